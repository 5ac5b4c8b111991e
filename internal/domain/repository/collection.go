// Package repository defines the data-access contracts used by use cases.
package repository

import (
	"context"

	"apikit/internal/domain/pagination"
	"apikit/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrDocumentNotFound is returned by single-document operations that match nothing.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Filter is a document-store query filter. Keys are stored field names.
type Filter = bson.M

// Update is a partial update; each key is a stored field set to its value.
type Update = bson.M

// FindOptions control sorting, paging and reference resolution of a multi-document read.
type FindOptions struct {
	Sort     []pagination.SortField
	Skip     int64
	Limit    int64
	Populate []string
}

// FindOptionsFrom translates pagination options into FindOptions.
func FindOptionsFrom(opts pagination.Options) FindOptions {
	n := opts.Normalize()

	return FindOptions{
		Sort:     n.Sort(),
		Skip:     int64(n.Skip()),
		Limit:    int64(n.Limit),
		Populate: n.PopulateFields(),
	}
}

// BulkResult reports the outcome of a multi-document write.
type BulkResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
	Deleted  int64 `json:"deletedCount"`
}

// Collection is the generic data-access capability over one entity collection.
type Collection[T any] interface {
	// Name returns the collection name.
	Name() string

	// InsertOne assigns identity and timestamps to doc and persists it.
	InsertOne(ctx context.Context, doc *T) error

	// InsertMany persists docs in order and stops at the first failure.
	InsertMany(ctx context.Context, docs []*T) error

	// FindOne returns the first matching document or ErrDocumentNotFound.
	FindOne(ctx context.Context, filter Filter, populate []string) (*T, error)

	// Find returns every document matching filter.
	Find(ctx context.Context, filter Filter, opts FindOptions) ([]*T, error)

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, filter Filter) (int64, error)

	// UpdateOne applies update to the first match and returns the updated document
	// or ErrDocumentNotFound.
	UpdateOne(ctx context.Context, filter Filter, update Update) (*T, error)

	// UpdateMany applies update to every match.
	UpdateMany(ctx context.Context, filter Filter, update Update) (BulkResult, error)

	// DeleteOne removes the first match and returns it or ErrDocumentNotFound.
	DeleteOne(ctx context.Context, filter Filter) (*T, error)

	// DeleteMany removes every match.
	DeleteMany(ctx context.Context, filter Filter) (BulkResult, error)
}

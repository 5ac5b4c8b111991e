// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"apikit/internal/domain/pagination"
	"apikit/internal/domain/repository"
)

// CrudUsecase is the generic create/read/update/delete contract over one entity type.
//
// Filters may carry an "id" key holding a hex string, a list of hex strings or an
// ObjectID; it is rewritten to the stored identity before querying. Single-target
// operations that match nothing return (nil, nil). Bulk operations never fail
// because nothing matched.
type CrudUsecase[T any] interface {
	CreateOne(ctx context.Context, doc *T) (*T, error)
	CreateMany(ctx context.Context, docs []*T) ([]*T, error)
	ReadOne(ctx context.Context, filter repository.Filter) (*T, error)
	// ReadMany is unbounded; callers needing bounds use ReadManyPaginated.
	ReadMany(ctx context.Context, filter repository.Filter) ([]*T, error)
	ReadManyPaginated(ctx context.Context, filter repository.Filter, opts pagination.Options) (*pagination.Result[T], error)
	UpdateOne(ctx context.Context, filter repository.Filter, update repository.Update) (*T, error)
	UpdateMany(ctx context.Context, filter repository.Filter, update repository.Update) (repository.BulkResult, error)
	DeleteOne(ctx context.Context, filter repository.Filter) (*T, error)
	DeleteMany(ctx context.Context, filter repository.Filter) (repository.BulkResult, error)
	Count(ctx context.Context, filter repository.Filter) (int64, error)
}

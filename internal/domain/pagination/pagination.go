// Package pagination implements paginated reads over any entity collection.
package pagination

import (
	"context"
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultLimit     = 10
	DefaultPage      = 1
	DefaultSortField = "createdAt"
)

// Options are the paging, sorting and populate options of a paginated read.
type Options struct {
	// SortBy is a comma separated list of field:asc|desc pairs
	SortBy string `query:"sortBy" json:"sortBy,omitempty"`
	Limit  int    `query:"limit" json:"limit,omitempty"`
	Page   int    `query:"page" json:"page,omitempty"`
	// Populate is a comma separated list of reference fields to resolve
	Populate string `query:"populate" json:"populate,omitempty"`
}

// SortField is a single sort key.
type SortField struct {
	Field      string
	Descending bool
}

// Result is one page of entities.
type Result[T any] struct {
	Results      []*T  `json:"results"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

// Normalize returns a copy with limit and page defaulted when absent or non-positive.
func (o Options) Normalize() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Page <= 0 {
		o.Page = DefaultPage
	}

	return o
}

// Skip is the number of documents preceding the requested page.
func (o Options) Skip() int {
	n := o.Normalize()

	return (n.Page - 1) * n.Limit
}

// Sort parses SortBy. An empty SortBy sorts by createdAt ascending.
func (o Options) Sort() []SortField {
	fields := make([]SortField, 0)
	for _, part := range strings.Split(o.SortBy, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, dir, _ := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		fields = append(fields, SortField{
			Field:      name,
			Descending: strings.EqualFold(strings.TrimSpace(dir), "desc"),
		})
	}

	if len(fields) == 0 {
		return []SortField{{Field: DefaultSortField}}
	}

	return fields
}

// PopulateFields splits Populate into field names.
func (o Options) PopulateFields() []string {
	if strings.TrimSpace(o.Populate) == "" {
		return nil
	}

	fields := make([]string, 0)
	for _, f := range strings.Split(o.Populate, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}

	return fields
}

// CountFunc counts every document matching the caller's filter.
type CountFunc func(ctx context.Context) (int64, error)

// FindFunc fetches one sorted, skipped and limited page.
type FindFunc[T any] func(ctx context.Context, opts Options) ([]*T, error)

// Paginate runs count and find concurrently and assembles the page.
func Paginate[T any](ctx context.Context, opts Options, count CountFunc, find FindFunc[T]) (*Result[T], error) {
	opts = opts.Normalize()

	var (
		total   int64
		results []*T
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := count(gctx)
		if err != nil {
			return errors.Wrap(err, "count documents")
		}
		total = n

		return nil
	})
	g.Go(func() error {
		docs, err := find(gctx, opts)
		if err != nil {
			return errors.Wrap(err, "find documents")
		}
		results = docs

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // already wrapped inside the group
	}

	if results == nil {
		results = []*T{}
	}

	return &Result[T]{
		Results:      results,
		Page:         opts.Page,
		Limit:        opts.Limit,
		TotalPages:   int(math.Ceil(float64(total) / float64(opts.Limit))),
		TotalResults: total,
	}, nil
}

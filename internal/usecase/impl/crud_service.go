// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/pagination"
	"apikit/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hooks customise the write path of a CrudService.
type Hooks[T any] struct {
	// BeforeCreate runs on every document before it is inserted.
	BeforeCreate func(ctx context.Context, doc *T) error
	// BeforeUpdate runs before single and bulk updates with the normalised filter.
	BeforeUpdate func(ctx context.Context, filter repository.Filter, update repository.Update) error
	// TranslateError maps store errors to domain errors. Returning nil keeps the original.
	TranslateError func(err error) error
}

// CrudService implements usecase.CrudUsecase over one collection.
// Entity services embed it and add their own rules through Hooks.
type CrudService[T any] struct {
	coll      repository.Collection[T]
	txManager repository.TransactionManager
	hooks     Hooks[T]
	logger    *slog.Logger
}

// NewCrudService is the constructor for CrudService.
func NewCrudService[T any](
	coll repository.Collection[T],
	txManager repository.TransactionManager,
	logger *slog.Logger,
	hooks Hooks[T],
) *CrudService[T] {
	return &CrudService[T]{
		coll:      coll,
		txManager: txManager,
		hooks:     hooks,
		logger:    logger,
	}
}

func (srv *CrudService[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("collection", srv.coll.Name()))
}

func (srv *CrudService[T]) translate(err error, message string) error {
	if srv.hooks.TranslateError != nil {
		if mapped := srv.hooks.TranslateError(err); mapped != nil {
			return errors.Wrap(mapped, message)
		}
	}

	return errors.Wrap(err, message)
}

// CreateOne persists doc and returns it with identity and timestamps set.
func (srv *CrudService[T]) CreateOne(ctx context.Context, doc *T) (*T, error) {
	if srv.hooks.BeforeCreate != nil {
		if err := srv.hooks.BeforeCreate(ctx, doc); err != nil {
			return nil, err
		}
	}

	if err := srv.coll.InsertOne(ctx, doc); err != nil {
		srv.log(ctx).Warn("Failed to create document", slog.Any("error", err))

		return nil, srv.translate(err, "failed to create document")
	}

	return doc, nil
}

// CreateMany persists docs in one transaction when the store supports it.
// Otherwise the batch is ordered and stops at the first failure, keeping earlier inserts.
func (srv *CrudService[T]) CreateMany(ctx context.Context, docs []*T) ([]*T, error) {
	if len(docs) == 0 {
		return []*T{}, nil
	}

	if srv.hooks.BeforeCreate != nil {
		for _, doc := range docs {
			if err := srv.hooks.BeforeCreate(ctx, doc); err != nil {
				return nil, err
			}
		}
	}

	err := srv.txManager.Execute(ctx, func(ctx context.Context) error {
		return srv.coll.InsertMany(ctx, docs)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create documents", slog.Int("count", len(docs)), slog.Any("error", err))

		return nil, srv.translate(err, "failed to create documents")
	}

	return docs, nil
}

// ReadOne returns the first match, or nil when nothing matches.
func (srv *CrudService[T]) ReadOne(ctx context.Context, filter repository.Filter) (*T, error) {
	doc, err := srv.coll.FindOne(ctx, normalizeFilter(filter), nil)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read document")
	}

	return doc, nil
}

// ReadMany returns every match.
func (srv *CrudService[T]) ReadMany(ctx context.Context, filter repository.Filter) ([]*T, error) {
	docs, err := srv.coll.Find(ctx, normalizeFilter(filter), repository.FindOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read documents")
	}

	return docs, nil
}

// ReadManyPaginated returns one page of matches together with the totals.
func (srv *CrudService[T]) ReadManyPaginated(ctx context.Context, filter repository.Filter, opts pagination.Options) (*pagination.Result[T], error) {
	filter = normalizeFilter(filter)

	result, err := pagination.Paginate(ctx, opts,
		func(ctx context.Context) (int64, error) {
			return srv.coll.Count(ctx, filter)
		},
		func(ctx context.Context, opts pagination.Options) ([]*T, error) {
			return srv.coll.Find(ctx, filter, repository.FindOptionsFrom(opts))
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to paginate documents")
	}

	return result, nil
}

// UpdateOne applies update to the first match and returns the updated document,
// or nil when nothing matches.
func (srv *CrudService[T]) UpdateOne(ctx context.Context, filter repository.Filter, update repository.Update) (*T, error) {
	filter = normalizeFilter(filter)

	if srv.hooks.BeforeUpdate != nil {
		if err := srv.hooks.BeforeUpdate(ctx, filter, update); err != nil {
			return nil, err
		}
	}

	doc, err := srv.coll.UpdateOne(ctx, filter, update)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return nil, nil
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to update document", slog.Any("error", err))

		return nil, srv.translate(err, "failed to update document")
	}

	return doc, nil
}

// UpdateMany applies the same update to every match.
func (srv *CrudService[T]) UpdateMany(ctx context.Context, filter repository.Filter, update repository.Update) (repository.BulkResult, error) {
	filter = normalizeFilter(filter)

	if srv.hooks.BeforeUpdate != nil {
		if err := srv.hooks.BeforeUpdate(ctx, filter, update); err != nil {
			return repository.BulkResult{}, err
		}
	}

	result, err := srv.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return repository.BulkResult{}, srv.translate(err, "failed to update documents")
	}

	srv.log(ctx).Debug("Updated documents", slog.Int64("matched", result.Matched), slog.Int64("modified", result.Modified))

	return result, nil
}

// DeleteOne removes the first match and returns it, or nil when nothing matches.
func (srv *CrudService[T]) DeleteOne(ctx context.Context, filter repository.Filter) (*T, error) {
	doc, err := srv.coll.DeleteOne(ctx, normalizeFilter(filter))
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete document")
	}

	return doc, nil
}

// DeleteMany removes every match.
func (srv *CrudService[T]) DeleteMany(ctx context.Context, filter repository.Filter) (repository.BulkResult, error) {
	result, err := srv.coll.DeleteMany(ctx, normalizeFilter(filter))
	if err != nil {
		return repository.BulkResult{}, errors.Wrap(err, "failed to delete documents")
	}

	srv.log(ctx).Debug("Deleted documents", slog.Int64("deleted", result.Deleted))

	return result, nil
}

// Count returns the number of matches.
func (srv *CrudService[T]) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	n, err := srv.coll.Count(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count documents")
	}

	return n, nil
}

// normalizeFilter copies filter, moving "id" onto the stored identity field.
func normalizeFilter(filter repository.Filter) repository.Filter {
	out := make(repository.Filter, len(filter))
	for k, v := range filter {
		if k == "id" {
			out["_id"] = identityValue(v)

			continue
		}
		out[k] = v
	}

	return out
}

func identityValue(v any) any {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id
	case string:
		return objectIDOrNil(id)
	case []string:
		ids := make([]primitive.ObjectID, 0, len(id))
		for _, s := range id {
			ids = append(ids, objectIDOrNil(s))
		}

		return bson.M{"$in": ids}
	case []primitive.ObjectID:
		return bson.M{"$in": id}
	case []any:
		ids := make([]any, 0, len(id))
		for _, item := range id {
			ids = append(ids, identityValue(item))
		}

		return bson.M{"$in": ids}
	default:
		return v
	}
}

// objectIDOrNil parses hex. Malformed ids become NilObjectID, which matches no stored document.
func objectIDOrNil(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}

	return id
}

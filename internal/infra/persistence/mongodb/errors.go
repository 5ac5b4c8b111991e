package mongodb

import (
	"apikit/internal/domain/repository"
	"apikit/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// translateError maps driver errors onto repository sentinels.
func translateError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return errors.Wrap(repository.ErrDocumentNotFound, op)
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrap(errors.Join(repository.ErrDuplicateKey, err), op)
	default:
		return errors.Wrap(err, op)
	}
}

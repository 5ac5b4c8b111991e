package mongodb

import (
	"context"

	"apikit/config"
	"apikit/internal/domain/repository"
	"apikit/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// mongoTransactionManager implements the domain's TransactionManager interface using MongoDB sessions.
type mongoTransactionManager struct {
	client  *mongo.Client
	enabled bool
}

// NewTransactionManager returns a TransactionManager. Transactions need a replica set,
// so they are used only when mongo.transactions is set.
func NewTransactionManager(client *mongo.Client, cfg *config.Config) repository.TransactionManager {
	return &mongoTransactionManager{
		client:  client,
		enabled: cfg.Mongo != nil && cfg.Mongo.Transactions,
	}
}

func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if !tm.enabled {
		return fn(ctx)
	}

	session, err := tm.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})

	return err //nolint:wrapcheck // fn errors pass through unchanged
}

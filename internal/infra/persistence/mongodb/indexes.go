package mongodb

import (
	"context"
	"log/slog"

	"apikit/internal/domain/entity"
	"apikit/internal/domain/lifecycle"
	"apikit/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// indexModels lists the indexes every collection relies on.
func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		entity.UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		entity.TokenCollection: {
			{Keys: bson.D{{Key: "token", Value: 1}}},
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "type", Value: 1}}},
		},
		entity.MessageCollection: {
			{Keys: bson.D{{Key: "author", Value: 1}}},
		},
	}
}

// IndexParams defines the parameters for index creation
type IndexParams struct {
	fx.In
	fx.Lifecycle

	DB     *mongo.Database
	Logger *slog.Logger
}

// RegisterIndexes creates the indexes on application start.
func RegisterIndexes(params IndexParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return EnsureIndexes(ctx, params.DB, params.Logger)
		},
	})
}

// EnsureIndexes creates missing indexes. Existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	for name, models := range indexModels() {
		created, err := db.Collection(name).Indexes().CreateMany(ctx, models)
		if err != nil {
			return errors.Wrapf(err, "create indexes on %s", name)
		}

		logger.Debug("MongoDB indexes ensured",
			slog.String("collection", name),
			slog.Any("indexes", created),
		)
	}

	return nil
}

// Package mongodb contains the concrete implementation of the persistence layer using MongoDB.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"apikit/config"
	"apikit/internal/domain/lifecycle"
	"apikit/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const defaultConnectTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client. The connection is verified on start and closed on stop.
func New(params Params) (*mongo.Client, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required")
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetMonitor(newCommandMonitor(params.Logger, params.Config))

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("MongoDB connected", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return errors.Wrap(client.Disconnect(stopCtx), "failed to disconnect MongoDB")
		},
	})

	return client, nil
}

// NewDatabase returns the configured database handle.
func NewDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

// Package cache provides the Redis client and Redis-backed helpers.
package cache

import (
	"context"
	"log/slog"

	"apikit/config"
	"apikit/internal/domain/lifecycle"
	"apikit/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the parameters for the Redis client
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns a client for the redis section, or nil when Redis is not configured.
func NewRedisClient(params Params) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Redis only backs rate limiting, which fails open.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, rate limiting will fail open",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(client.Close(), "close redis client")
		},
	})

	return client
}

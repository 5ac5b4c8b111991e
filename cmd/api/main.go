package main

import (
	"context"
	"log/slog"
	"os"

	"apikit/config"
	"apikit/internal/delivery"
	"apikit/internal/delivery/api"
	"apikit/internal/delivery/api/middleware"
	"apikit/internal/delivery/api/router/handler"
	"apikit/internal/delivery/scheduler"
	"apikit/internal/infra/auth"
	"apikit/internal/infra/cache"
	logs "apikit/internal/infra/log"
	"apikit/internal/infra/mail"
	"apikit/internal/infra/persistence/mongodb"
	"apikit/internal/infra/pubsub"
	"apikit/internal/infra/storage"
	"apikit/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		mongodb.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTSigner,
			cache.NewRedisClient,
			cache.NewRateLimiter,
			storage.NewMinioStorage,
			mail.NewSMTPSender,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewMessageService,
			impl.NewTokenService,
			impl.NewAuthService,
			impl.NewMailService,
			impl.NewUploadService,
			impl.NewJobs,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserController,
			handler.NewMessageController,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		scheduler.Module,
	)
}

func startServer(ctx context.Context, params startServerParams) {
	serveCtx, cancel := context.WithCancel(ctx)
	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(serveCtx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

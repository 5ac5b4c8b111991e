package main

import (
	"context"
	"log/slog"
	"os"

	"apikit/config"
	"apikit/internal/delivery"
	"apikit/internal/delivery/worker"
	logs "apikit/internal/infra/log"
	"apikit/internal/infra/mail"
	"apikit/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		worker.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			mail.NewSMTPSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMailService,
		),
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

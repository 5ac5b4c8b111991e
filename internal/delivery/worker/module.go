package worker

import (
	"apikit/internal/delivery/worker/handler"

	"go.uber.org/fx"
)

// Module provides the mail worker deliveries
var Module = fx.Module("worker",
	fx.Provide(
		handler.NewMailHandler,
		handler.NewPushHandler,
		fx.Annotate(NewServer, fx.ResultTags(`group:"deliveries"`)),
		fx.Annotate(NewConsumers, fx.ResultTags(`group:"deliveries,flatten"`)),
	),
)

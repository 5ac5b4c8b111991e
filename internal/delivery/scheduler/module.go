package scheduler

import "go.uber.org/fx"

// Module provides the cron scheduler delivery
var Module = fx.Module("scheduler",
	fx.Provide(
		New,
		fx.Annotate(NewDelivery, fx.ResultTags(`group:"deliveries,flatten"`)),
	),
)

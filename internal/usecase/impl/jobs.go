package impl

import (
	"context"
	"log/slog"
	"time"

	"apikit/internal/domain/repository"
	"apikit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// JobParams holds dependencies for the scheduled jobs, injected by Fx.
type JobParams struct {
	fx.In

	Tokens   usecase.TokenUsecase
	Users    usecase.UserUsecase
	Messages usecase.MessageUsecase
	Logger   *slog.Logger
}

// JobsResult publishes the jobs into the "jobs" group read by the scheduler.
type JobsResult struct {
	fx.Out

	Jobs []usecase.Job `group:"jobs,flatten"`
}

// NewJobs returns the maintenance and reporting jobs.
func NewJobs(params JobParams) JobsResult {
	logger := params.Logger.With(slog.String("component", "jobs"))

	return JobsResult{Jobs: []usecase.Job{
		{
			Name:    "auth-token-cleanup",
			Spec:    "* * * * *",
			Run:     cleanupExpiredTokens(params.Tokens, logger, time.Now),
			Options: usecase.JobOptions{RunOnInit: true, StopOnError: true},
		},
		{
			Name: "message-stats",
			Spec: "*/5 * * * *",
			Run:  reportMessageStats(params.Messages, logger),
		},
		{
			Name: "user-stats",
			Spec: "*/10 * * * *",
			Run:  reportUserStats(params.Users, logger),
		},
	}}
}

func cleanupExpiredTokens(tokens usecase.TokenUsecase, logger *slog.Logger, now func() time.Time) func(context.Context) error {
	return func(ctx context.Context) error {
		deleted, err := tokens.DeleteExpired(ctx, now())
		if err != nil {
			return errors.Wrap(err, "failed to clean up expired tokens")
		}
		if deleted > 0 {
			logger.Info("Removed expired tokens", slog.Int64("deleted", deleted))
		}

		return nil
	}
}

func reportMessageStats(messages usecase.MessageUsecase, logger *slog.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		total, err := messages.Count(ctx, repository.Filter{})
		if err != nil {
			return errors.Wrap(err, "failed to count messages")
		}

		archived, err := messages.Count(ctx, repository.Filter{"isArchived": true})
		if err != nil {
			return errors.Wrap(err, "failed to count archived messages")
		}

		logger.Info("Message stats", slog.Int64("total", total), slog.Int64("archived", archived))

		return nil
	}
}

func reportUserStats(users usecase.UserUsecase, logger *slog.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		unverified, err := users.Count(ctx, repository.Filter{"isEmailVerified": false})
		if err != nil {
			return errors.Wrap(err, "failed to count unverified users")
		}

		logger.Info("User stats", slog.Int64("unverified", unverified))

		return nil
	}
}

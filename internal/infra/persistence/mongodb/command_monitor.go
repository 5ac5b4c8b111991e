package mongodb

import (
	"context"
	"log/slog"
	"time"

	"apikit/config"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

// commandLogger reports failed and slow driver commands through slog.
type commandLogger struct {
	logger        *slog.Logger
	slowThreshold time.Duration
	verbose       bool
}

func newCommandMonitor(baseLogger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	l := &commandLogger{
		logger:        baseLogger,
		slowThreshold: defaultSlowCommandThreshold,
		verbose:       cfg != nil && cfg.Env.Debug,
	}

	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) succeeded(ctx context.Context, e *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("command", e.CommandName),
		slog.String("database", e.DatabaseName),
		slog.Duration("elapsed", e.Duration),
	}

	switch {
	case l.slowThreshold > 0 && e.Duration > l.slowThreshold:
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command", attrs...)
	case l.verbose:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "MongoDB command", attrs...)
	}
}

func (l *commandLogger) failed(ctx context.Context, e *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, slog.LevelError, "MongoDB command failed",
		slog.String("command", e.CommandName),
		slog.String("database", e.DatabaseName),
		slog.Duration("elapsed", e.Duration),
		slog.Any("failure", e.Failure),
	)
}

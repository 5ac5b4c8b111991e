package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"apikit/config"
	"apikit/internal/errors"
	"apikit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, cfg *config.Config, jobs ...usecase.Job) (*Scheduler, error) {
	t.Helper()

	return New(SchedulerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Jobs:   jobs,
	})
}

func TestScheduler_RunOnInitAndStopOnError(t *testing.T) {
	var healthyRuns, failingRuns atomic.Int32

	s, err := newTestScheduler(t, &config.Config{},
		usecase.Job{
			Name: "healthy",
			Spec: "@every 1h",
			Run: func(context.Context) error {
				healthyRuns.Add(1)

				return nil
			},
			Options: usecase.JobOptions{RunOnInit: true, StopOnError: true},
		},
		usecase.Job{
			Name: "failing",
			Spec: "@every 1h",
			Run: func(context.Context) error {
				failingRuns.Add(1)

				return errors.New("boom")
			},
			Options: usecase.JobOptions{RunOnInit: true, StopOnError: true},
		},
		usecase.Job{
			Name: "lazy",
			Spec: "@every 1h",
			Run:  func(context.Context) error { return errors.New("never runs") },
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"failing", "healthy", "lazy"}, s.Jobs())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	assert.Eventually(t, func() bool {
		return healthyRuns.Load() == 1 && failingRuns.Load() == 1 && len(s.Jobs()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"healthy", "lazy"}, s.Jobs())

	cancel()
	require.NoError(t, <-done)
	require.NoError(t, s.stop(context.Background()))
}

func TestScheduler_RejectsBadRegistrations(t *testing.T) {
	noop := func(context.Context) error { return nil }

	t.Run("invalid spec", func(t *testing.T) {
		_, err := newTestScheduler(t, &config.Config{}, usecase.Job{Name: "a", Spec: "every now and then", Run: noop})
		assert.Error(t, err)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := newTestScheduler(t, &config.Config{},
			usecase.Job{Name: "a", Spec: "* * * * *", Run: noop},
			usecase.Job{Name: "a", Spec: "*/5 * * * *", Run: noop},
		)
		assert.Error(t, err)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := newTestScheduler(t, &config.Config{Cron: &config.CronConfig{Timezone: "Mars/Olympus"}})
		assert.Error(t, err)
	})
}

func TestNewDelivery(t *testing.T) {
	s, err := newTestScheduler(t, &config.Config{})
	require.NoError(t, err)

	assert.Empty(t, NewDelivery(&config.Config{}, s))
	assert.Len(t, NewDelivery(&config.Config{Cron: &config.CronConfig{Enabled: true}}, s), 1)
}

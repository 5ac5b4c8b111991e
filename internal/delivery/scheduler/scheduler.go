// Package scheduler runs the registered jobs on their cron schedules.
package scheduler

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"apikit/config"
	"apikit/internal/delivery"
	"apikit/internal/domain/lifecycle"
	"apikit/internal/errors"
	"apikit/internal/usecase"
	"apikit/internal/util"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Scheduler owns the cron runner. Jobs flagged StopOnError are removed after
// their first failure.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]cron.EntryID
	ctx     context.Context
	jobs    []usecase.Job
}

// SchedulerParams holds dependencies for the Scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Jobs   []usecase.Job `group:"jobs"`
}

// New builds the scheduler and registers every job. Invalid specs fail start-up.
func New(params SchedulerParams) (*Scheduler, error) {
	logger := params.Logger.With(slog.String("component", "scheduler"))

	loc := time.Local
	if params.Cfg.Cron != nil && params.Cfg.Cron.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(params.Cfg.Cron.Timezone); err != nil {
			return nil, errors.Wrapf(err, "load timezone %s", params.Cfg.Cron.Timezone)
		}
	}

	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger:  logger,
		entries: make(map[string]cron.EntryID, len(params.Jobs)),
		ctx:     context.Background(),
	}

	for _, job := range params.Jobs {
		if err := s.register(job); err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{OnStop: s.stop})

	return s, nil
}

func (s *Scheduler) register(job usecase.Job) error {
	if _, exists := s.entries[job.Name]; exists {
		return errors.Errorf("duplicate job name %q", job.Name)
	}

	id, err := s.cron.AddFunc(job.Spec, func() { s.run(job) })
	if err != nil {
		return errors.Wrapf(err, "schedule job %s", job.Name)
	}

	s.entries[job.Name] = id
	s.jobs = append(s.jobs, job)

	return nil
}

// Jobs returns the names of the jobs still scheduled.
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Serve starts the cron runner, fires RunOnInit jobs and blocks until ctx is done.
func (s *Scheduler) Serve(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	s.logger.Info("Starting scheduler", slog.Any("jobs", s.Jobs()))
	s.cron.Start()

	for _, job := range s.jobs {
		if job.Options.RunOnInit {
			go s.run(job)
		}
	}

	<-ctx.Done()

	return nil
}

func (s *Scheduler) run(job usecase.Job) {
	s.mu.Lock()
	ctx := s.ctx
	_, scheduled := s.entries[job.Name]
	s.mu.Unlock()
	if !scheduled {
		return
	}

	logger := s.logger.With(slog.String("job", job.Name))
	start := time.Now()

	if err := job.Run(ctx); err != nil {
		logger.Error("Job failed", slog.Any("error", err), slog.String("duration", util.FormatDuration(time.Since(start))))
		if job.Options.StopOnError {
			s.remove(job.Name)
			logger.Warn("Job unscheduled after failure")
		}

		return
	}

	logger.Debug("Job finished", slog.String("duration", util.FormatDuration(time.Since(start))))
}

func (s *Scheduler) remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.entries[name]; ok {
		s.cron.Remove(id)
		delete(s.entries, name)
	}
}

func (s *Scheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping scheduler")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "wait for running jobs")
	}
}

// NewDelivery exposes the scheduler as a delivery when cron is enabled.
func NewDelivery(cfg *config.Config, s *Scheduler) []delivery.Delivery {
	if cfg.Cron == nil || !cfg.Cron.Enabled {
		return nil
	}

	return []delivery.Delivery{s}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}

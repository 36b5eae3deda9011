// Package worker runs the periodic background jobs: freshness updates, expiry
// alerts, achievement re-evaluation and refresh token cleanup.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/freshkeep-backend/internal/config"
)

type jobRecorder interface {
	JobRun(job string, d time.Duration, err error)
}

// Scheduler owns the cron runner and the set of registered jobs.
type Scheduler struct {
	log     *slog.Logger
	cron    *cron.Cron
	metrics jobRecorder

	mu      sync.Mutex
	running bool
}

// NewScheduler registers every job of jobs with the specs from cfg.
// Jobs run in UTC; per-user local time is resolved inside the job.
func NewScheduler(logger *slog.Logger, cfg config.SchedulerConfig, jobs *Jobs, metrics jobRecorder) (*Scheduler, error) {
	log := logger.With("component", "scheduler")
	cl := cronLogger{log: log}

	s := &Scheduler{
		log:     log,
		metrics: metrics,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}

	entries := []struct {
		name string
		spec string
		run  func(ctx context.Context) error
	}{
		{"freshness", cfg.Freshness, jobs.Freshness},
		{"alerts", cfg.Alerts, jobs.Alerts},
		{"achievements", cfg.Achievements, jobs.Achievements},
		{"token_cleanup", cfg.TokenCleanup, jobs.TokenCleanup},
	}

	for _, e := range entries {
		if e.spec == "" {
			log.Info("job disabled", slog.String("job", e.name))
			continue
		}
		if _, err := s.cron.AddFunc(e.spec, s.wrap(e.name, e.run)); err != nil {
			return nil, fmt.Errorf("worker: schedule %s %q: %w", e.name, e.spec, err)
		}
	}

	return s, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
	s.log.Info("scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker: stop: %w", ctx.Err())
	}
}

// wrap turns a job into a cron func that logs and records each run.
func (s *Scheduler) wrap(name string, run func(ctx context.Context) error) func() {
	return func() {
		s.runJob(context.Background(), name, run)
	}
}

func (s *Scheduler) runJob(ctx context.Context, name string, run func(ctx context.Context) error) {
	start := time.Now()
	err := run(ctx)
	d := time.Since(start)

	if s.metrics != nil {
		s.metrics.JobRun(name, d, err)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "job failed", slog.String("job", name), slog.Duration("duration", d), slog.String("error", err.Error()))
		return
	}
	s.log.InfoContext(ctx, "job finished", slog.String("job", name), slog.Duration("duration", d))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}

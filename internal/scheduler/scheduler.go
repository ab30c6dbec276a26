// Package scheduler runs periodic maintenance jobs on cron specs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a unit of maintenance work.
type Job func(ctx context.Context) error

// jobRecorder counts job runs by outcome.
type jobRecorder interface {
	JobRun(job string, err error)
}

// Scheduler wraps a cron runner. Overlapping runs of the same job are skipped
// and panics are recovered.
type Scheduler struct {
	cron    *cron.Cron
	log     *slog.Logger
	metrics jobRecorder
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
}

// New creates a scheduler. Each run gets at most timeout; zero means no limit.
func New(logger *slog.Logger, metrics jobRecorder, timeout time.Duration) *Scheduler {
	log := logger.With("component", "scheduler")
	cl := cronLogger{log: log}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log:     log,
		metrics: metrics,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Add registers job under name on spec (standard five-field cron or a
// descriptor such as @hourly).
func (s *Scheduler) Add(name, spec string, job Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(s.ctx, name, job) }); err != nil {
		return fmt.Errorf("scheduler: add %s (%q): %w", name, spec, err)
	}
	s.log.Info("job scheduled", slog.String("job", name), slog.String("spec", spec))
	return nil
}

// RunOnce executes job immediately, logging and counting the outcome.
func (s *Scheduler) RunOnce(ctx context.Context, name string, job Job) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := job(ctx)
	if s.metrics != nil {
		s.metrics.JobRun(name, err)
	}

	attrs := []any{slog.String("job", name), slog.Duration("duration", time.Since(start))}
	if err != nil {
		s.log.ErrorContext(ctx, "job failed", append(attrs, slog.String("error", err.Error()))...)
		return err
	}
	s.log.DebugContext(ctx, "job finished", attrs...)
	return nil
}

// Run starts the scheduler and blocks until ctx is cancelled, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.log.Info("scheduler started", slog.Int("jobs", len(s.cron.Entries())))

	<-ctx.Done()

	s.cancel()
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

// cronLogger adapts slog to the cron logger interface.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append([]any{slog.String("error", err.Error())}, keysAndValues...)...)
}

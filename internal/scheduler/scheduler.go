// Package scheduler runs the daily admin summary on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/middleware"
	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron runner and the registered jobs.
type Scheduler struct {
	cron       *cron.Cron
	summary    portssvc.SummarySvc
	logger     *slog.Logger
	jobTimeout time.Duration
	now        func() time.Time
}

// Config holds the schedule and time zone of the summary job.
type Config struct {
	Spec       string
	Location   *time.Location
	JobTimeout time.Duration
}

// New validates spec and registers the daily summary job. The runner is not started.
func New(cfg Config, summary portssvc.SummarySvc, logger *slog.Logger) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 5 * time.Minute
	}

	cronLogger := &slogCronLogger{logger: logger.With(slog.String("component", "scheduler"))}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		summary:    summary,
		logger:     logger,
		jobTimeout: cfg.JobTimeout,
		now:        time.Now,
	}

	if _, err := s.cron.AddFunc(cfg.Spec, s.RunDailySummary); err != nil {
		return nil, fmt.Errorf("%w: invalid schedule %q: %w", apperrors.ErrScheduler, cfg.Spec, err)
	}
	return s, nil
}

// Start runs the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop halts scheduling and waits for a running job, or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunDailySummary is the job body. Errors are logged; the next run is the retry.
func (s *Scheduler) RunDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	logger := s.logger.With(slog.String("job", "daily_admin_summary"))
	ctx = middleware.WithLogger(ctx, logger)

	result, err := s.summary.SendDailySummary(ctx, s.now())
	if err != nil {
		logger.Error("Daily summary job failed", slog.String("error", err.Error()))
		return
	}
	if result.Skipped {
		return
	}
	if result.Failed > 0 {
		logger.Warn("Daily summary partially delivered",
			slog.Int("delivered", result.Delivered),
			slog.Int("failed", result.Failed))
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)
	l.logger.Error(msg, args...)
}

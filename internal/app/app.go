package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"toc-generator/internal/domain/ports"
)

const (
	scheduledRunTimeout = 2 * time.Minute
	stopGracePeriod     = 5 * time.Second
)

// Job is one document generation.
type Job interface {
	Run(ctx context.Context) error
}

// App runs the generator once and, when a schedule is set, again on every cron tick.
type App struct {
	cron     *cron.Cron
	job      Job
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. An empty schedule means a single run.
func New(job Job, logger ports.Logger, schedule Schedule) *App {
	return &App{
		cron:     cron.New(),
		job:      job,
		logger:   logger,
		schedule: string(schedule),
	}
}

// Schedule is a cron spec in the standard five-field or descriptor format.
type Schedule string

// Run executes the job immediately. Without a schedule it returns the job's error;
// with one it keeps regenerating until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return a.job.Run(ctx)
	}

	if err := a.scheduleJob(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first generation immediately")
	if err := a.job.Run(ctx); err != nil {
		a.logger.Error(ctx, "initial generation failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopGracePeriod):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob(ctx context.Context) error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, scheduledRunTimeout)
		defer cancel()
		if err := a.job.Run(runCtx); err != nil {
			a.logger.Error(runCtx, "scheduled generation failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", a.schedule, err)
	}
	return nil
}

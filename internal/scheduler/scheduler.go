package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// SaveFunc persists the day's snapshots. Injected so the scheduler owns
// only the timing, not the save logic.
type SaveFunc func(ctx context.Context) error

// AutoSave periodically re-saves the day's allocation snapshots.
// Fire-and-forget: a failed save is logged and waited out until the next
// tick, never retried early.
type AutoSave struct {
	cron     *cron.Cron
	interval string
	save     SaveFunc
	timeout  time.Duration
	logger   *slog.Logger
}

// NewAutoSave creates the auto-save job. interval is a robfig/cron spec
// such as "@every 5m".
func NewAutoSave(interval string, save SaveFunc, logger *slog.Logger) *AutoSave {
	if logger == nil {
		logger = slog.Default()
	}
	return &AutoSave{
		cron:     cron.New(),
		interval: interval,
		save:     save,
		timeout:  time.Minute,
		logger:   logger,
	}
}

func (a *AutoSave) Start() error {
	if _, err := a.cron.AddFunc(a.interval, a.run); err != nil {
		return err
	}
	a.cron.Start()
	a.logger.Info("auto-save scheduler started", "interval", a.interval)
	return nil
}

// Stop halts the schedule; a save already in flight runs to completion.
func (a *AutoSave) Stop() {
	a.cron.Stop()
	a.logger.Info("auto-save scheduler stopped")
}

// RunNow triggers one save outside the schedule.
func (a *AutoSave) RunNow(ctx context.Context) {
	if err := a.save(ctx); err != nil {
		a.logger.Warn("auto-save failed", "error", err)
	}
}

func (a *AutoSave) run() {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	a.RunNow(ctx)
}

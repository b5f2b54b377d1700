package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// runSweeper expires stale holds on a ticker until SIGINT or SIGTERM. The
// sweep is idempotent, so several instances may run it against the same
// database; HoldSeat also re-validates expiry inline and never depends on
// the sweeper having run.
func (app *Application) runSweeper() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.logger.Info("starting expiry sweeper",
		"interval", app.config.Sweep.Interval,
		"env", app.config.Env,
		"version", version,
	)

	ticker := time.NewTicker(app.config.Sweep.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			app.logger.Info("stopping expiry sweeper")
			return nil
		case <-ticker.C:
			app.sweep(ctx)
		}
	}
}

func (app *Application) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	count, err := app.ExpireStaleHolds(sweepCtx, time.Now())
	if err != nil {
		app.logger.Error("expiry sweep failed", "error", err)
		return
	}

	if count > 0 {
		app.logger.Info("expired stale holds", "count", count)
	}
}

// Package maintenance runs periodic background tasks as Go tickers. The API
// server is already a persistent process, so scheduled work is driven from
// Go instead of an external scheduler.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/sim"
)

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	TrainingSweepInterval time.Duration // Complete due training programs
	SweepWorkers          int
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		TrainingSweepInterval: 5 * time.Minute,
		SweepWorkers:          4,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, engine *sim.Engine, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"training_sweep", cfg.TrainingSweepInterval,
		"workers", cfg.SweepWorkers)

	tickers := make([]*time.Ticker, 0, 1)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	// Training sweep: completes programs whose end date has passed so
	// progression does not depend on a client polling the check endpoint.
	if cfg.TrainingSweepInterval > 0 {
		t := time.NewTicker(cfg.TrainingSweepInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() {
			result := engine.ProcessDueTrainings(ctx, cfg.SweepWorkers)
			if result.Found > 0 {
				logger.Info("Training sweep", "summary", result.Summary())
			}
			for _, e := range result.Errors {
				logger.Warn("Training sweep error", "error", e)
			}
		})
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	pipegraph "github.com/connormcn37/pipe-graph"
	"github.com/connormcn37/pipe-graph/pkg/ports"
)

// Runner drives the execution loop of a pipe-graph engine.
type Runner struct {
	engine   *pipegraph.Engine
	interval time.Duration
	maxTicks uint64
	tap      ports.OutputTap
	logger   *slog.Logger
	runID    string
}

// New creates a runner for the engine. Without options it runs a tight,
// unbounded loop with a silent logger; use WithMaxTicks or a cancellable
// context to stop it.
func New(engine *pipegraph.Engine, opts ...Option) *Runner {
	r := &Runner{
		engine: engine,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		runID:  uuid.New().String(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunID returns the identifier attached to this runner's log records.
func (r *Runner) RunID() string {
	return r.runID
}

// Run loops Step until the context ends or the tick budget is spent,
// and returns the number of ticks driven. A Step error stops the run
// immediately; a tap error does not.
func (r *Runner) Run(ctx context.Context) (uint64, error) {
	logger := r.logger.With("run_id", r.runID)
	logger.Info("run starting", "interval", r.interval, "max_ticks", r.maxTicks)

	var ticker *time.Ticker
	if r.interval > 0 {
		ticker = time.NewTicker(r.interval)
		defer ticker.Stop()
	}

	var ticks uint64
	for {
		if err := ctx.Err(); err != nil {
			logger.Info("run cancelled", "ticks", ticks)
			return ticks, err
		}

		if err := r.engine.Step(ctx); err != nil {
			return ticks, fmt.Errorf("step failed after %d ticks: %w", ticks, err)
		}
		ticks++
		r.mirror(ctx, logger)

		if r.maxTicks > 0 && ticks >= r.maxTicks {
			logger.Info("run complete", "ticks", ticks)
			return ticks, nil
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				logger.Info("run cancelled", "ticks", ticks)
				return ticks, ctx.Err()
			case <-ticker.C:
			}
		}
	}
}

// mirror forwards the committed outputs of the last tick to the tap.
func (r *Runner) mirror(ctx context.Context, logger *slog.Logger) {
	if r.tap == nil {
		return
	}
	tick := r.engine.Tick()
	if err := r.tap.Record(ctx, tick, r.engine.Outputs()); err != nil {
		logger.Warn("output tap failed", "tick", tick, "err", err)
	}
}

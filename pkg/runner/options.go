package runner

import (
	"log/slog"
	"time"

	"github.com/connormcn37/pipe-graph/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithInterval paces the loop: one tick per interval. Zero or negative
// means a tight loop.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		r.interval = d
	}
}

// WithMaxTicks bounds the run. Zero means unbounded.
func WithMaxTicks(n uint64) Option {
	return func(r *Runner) {
		r.maxTicks = n
	}
}

// WithTap mirrors every tick's committed outputs to the tap.
func WithTap(tap ports.OutputTap) Option {
	return func(r *Runner) {
		r.tap = tap
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

package runtime

import (
	"log/slog"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// Option defines a functional option for configuring a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom structured logger. Nil is ignored so callers
// can pass through an optional logger without guarding.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Pipeline) {
		p.hooks = hooks
	}
}

// WithWorkers sets the number of goroutines used for the compute phase.
// Values below 2 keep the serial path. Parallel compute does not change
// observable behavior: every node reads the same pre-tick snapshot and
// writes a result slot it owns exclusively.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

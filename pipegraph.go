package pipegraph

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/connormcn37/pipe-graph/internal/runtime"
	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/ports"
)

// Engine is the high-level entry point for the pipe-graph library.
// It wraps the internal runtime and provides a simplified, goroutine-safe
// API for consumers: register nodes, step the clock, read outputs.
type Engine struct {
	mu       sync.Mutex
	pipeline *runtime.Pipeline
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	workers  int
	Name     string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks. Hooks run inside the
// tick and must be fast; all callbacks are optional.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithWorkers enables parallel node computation with up to n workers.
// Results are identical to serial execution regardless of n.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithName labels the engine; the name is attached to every log record.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New initializes a new pipe-graph Engine. The zero configuration is
// usable: silent logger, serial compute, empty graph.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime,
	// which would overwrite its default).
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("graph", eng.Name)
	}

	eng.pipeline = runtime.New(
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithWorkers(eng.workers),
	)
	return eng
}

// AddNode registers a node and returns its stable identifier. Inputs
// name the nodes whose previous-tick outputs this node will receive, by
// identifier, in order. Forward references and self references are legal;
// they resolve once the referenced identifiers exist. Registration is
// rejected once stepping has begun.
func (e *Engine) AddNode(name string, logic ports.NodeLogic, inputs ...domain.NodeID) (domain.NodeID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pipeline.AddNode(name, logic, inputs)
}

// Step advances the graph by exactly one tick: snapshot all committed
// outputs, compute every node against that snapshot, commit the results.
// At most one step runs at a time; concurrent callers are serialized.
// The context flows to lifecycle hooks only. A started tick always
// completes.
func (e *Engine) Step(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pipeline.Step(ctx)
}

// Output returns the committed output of one node, as of the last
// completed tick.
func (e *Engine) Output(id domain.NodeID) (domain.Signal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pipeline.Output(id)
}

// Outputs returns the committed outputs of every node, indexed by
// identifier. The slice is a copy; the signals share payloads.
func (e *Engine) Outputs() []domain.Signal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pipeline.Outputs()
}

// Inspect returns the full graph wiring for visualization or
// introspection tools.
func (e *Engine) Inspect() []domain.NodeInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pipeline.Info()
}

// Tick returns the number of completed ticks.
func (e *Engine) Tick() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pipeline.Tick()
}

// Len returns the number of registered nodes.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pipeline.Len()
}

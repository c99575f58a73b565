package domain

import (
	"context"
	"time"
)

// TickEvent describes one tick of the pipeline.
type TickEvent struct {
	// Tick is the number of the tick, starting at 1 for the first step.
	Tick uint64
	// Nodes is the number of registered nodes.
	Nodes int
	// Duration is the wall time of the whole tick. Zero in OnTickBegin.
	Duration time.Duration
}

// NodeEvent describes one node's compute during a tick.
type NodeEvent struct {
	Tick       uint64
	NodeID     NodeID
	Name       string
	OutputKind Kind
	Duration   time.Duration
}

// LifecycleHooks defines optional callbacks for engine observability.
// All fields may be nil. Hooks run synchronously inside Step and must be
// fast; they must not call back into the pipeline. OnNodeProcessed and
// OnNodeRecovered may be invoked from multiple goroutines when the
// pipeline computes in parallel.
type LifecycleHooks struct {
	OnTickBegin     func(context.Context, *TickEvent)
	OnTickEnd       func(context.Context, *TickEvent)
	OnNodeProcessed func(context.Context, *NodeEvent)
	// OnNodeRecovered fires when a node's Process panicked and its output
	// degraded to Void for the tick.
	OnNodeRecovered func(context.Context, *NodeEvent)
}

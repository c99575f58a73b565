package ports

import "github.com/connormcn37/pipe-graph/pkg/domain"

// NodeLogic is the unit of computation a pipeline node wraps.
//
// Process receives the signals resolved for this tick (one per declared
// upstream, in wiring order, read from the snapshot of the previous
// tick's committed outputs) and returns exactly one output signal.
//
// Implementations must:
//   - depend only on the given inputs and their own private state, never
//     on another node's state;
//   - complete synchronously, with no blocking I/O (real sources
//     pre-resolve into signals outside the tick);
//   - tolerate Void or unexpected input variants by producing a
//     documented default instead of failing;
//   - advance any internal state deterministically given call order;
//   - never write into a received Frame: an image passes through as the
//     same shared reference, and changed pixel content goes into a newly
//     allocated Frame (copy-on-write), because the input frame may be
//     aliased by other nodes' buffers and by the current snapshot.
//
// A logic instance that cannot produce a meaningful result from its
// inputs degrades to Void rather than signalling an error; diagnostics
// are a logging concern, not part of the computed signal.
type NodeLogic interface {
	Process(inputs []domain.Signal) domain.Signal
}

// LogicFunc adapts a plain function to NodeLogic.
type LogicFunc func(inputs []domain.Signal) domain.Signal

// Process implements NodeLogic.
func (f LogicFunc) Process(inputs []domain.Signal) domain.Signal { return f(inputs) }

package memory

import (
	"context"
	"sync"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// Tap implements ports.OutputTap in memory, keeping only the most
// recently recorded tick. Safe for concurrent use.
//
// Frame references are shared with the recorded signals rather than
// copied, matching the read-only payload contract.
type Tap struct {
	tick    uint64
	outputs []domain.Signal
	mu      sync.RWMutex
}

// NewTap creates an empty in-memory tap.
func NewTap() *Tap {
	return &Tap{}
}

// Record replaces the held snapshot with the given tick's outputs.
func (t *Tap) Record(ctx context.Context, tick uint64, outputs []domain.Signal) error {
	// Copy the slice so later mutations by the caller can't skew the
	// snapshot; the signals themselves are values.
	copied := make([]domain.Signal, len(outputs))
	copy(copied, outputs)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.tick = tick
	t.outputs = copied
	return nil
}

// Latest returns the last recorded tick and its outputs. Before the
// first Record it returns tick zero and no outputs. The returned slice
// must be treated as read-only.
func (t *Tap) Latest() (uint64, []domain.Signal) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tick, t.outputs
}

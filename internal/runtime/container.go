package runtime

import (
	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/ports"
)

// container wraps one node's logic with its upstream wiring and a
// double-buffered output: two slots, exactly one published ("active") at
// any time. Committing writes the inactive slot first and then flips, so
// a reader of the active slot never observes a partial update and the
// previous tick's value stays readable until the flip.
type container struct {
	name   string
	logic  ports.NodeLogic
	inputs []domain.NodeID

	slots  [2]domain.Signal
	active int
}

// output returns the signal in the active slot. O(1), never blocks.
func (c *container) output() domain.Signal {
	return c.slots[c.active]
}

// commit writes next into the inactive slot, then publishes it. The
// previously active value becomes the stale slot, overwritten on the
// next commit.
func (c *container) commit(next domain.Signal) {
	idle := 1 - c.active
	c.slots[idle] = next
	c.active = idle
}

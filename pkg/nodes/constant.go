package nodes

import "github.com/connormcn37/pipe-graph/pkg/domain"

// Constant emits the same control value every tick, ignoring inputs.
type Constant struct {
	value float64
}

// NewConstant creates a control source fixed at v.
func NewConstant(v float64) *Constant {
	return &Constant{value: v}
}

// Process returns Value(v).
func (c *Constant) Process([]domain.Signal) domain.Signal {
	return domain.Value(c.value)
}

package nodes

import "github.com/connormcn37/pipe-graph/pkg/domain"

// Passthrough forwards input 0 unchanged. For image signals this means
// the exact same shared frame, no copy.
type Passthrough struct{}

// NewPassthrough creates a pass-through stage.
func NewPassthrough() Passthrough {
	return Passthrough{}
}

// Process returns input 0, or Void when unwired.
func (Passthrough) Process(in []domain.Signal) domain.Signal {
	if len(in) == 0 {
		return domain.Void()
	}
	return in[0]
}

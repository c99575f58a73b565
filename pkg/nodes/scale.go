package nodes

import "github.com/connormcn37/pipe-graph/pkg/domain"

// Scale multiplies the control value on input 0 by a fixed gain. Void or
// missing input reads as 0, so the output is always a Value; this makes
// Scale safe to place inside feedback loops that start from nothing.
type Scale struct {
	factor float64
}

// NewScale creates a control-value gain stage.
func NewScale(factor float64) *Scale {
	return &Scale{factor: factor}
}

// Process returns Value(input * factor).
func (s *Scale) Process(in []domain.Signal) domain.Signal {
	var v float64
	if len(in) > 0 {
		v = in[0].Scalar()
	}
	return domain.Value(v * s.factor)
}

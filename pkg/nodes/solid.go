package nodes

import "github.com/connormcn37/pipe-graph/pkg/domain"

// SolidSource produces a fresh frame of fixed dimensions each tick, every
// byte set to the level carried on input 0: byte value is level*255
// truncated, with the level clamped to [0, 1] first. A missing or
// non-Value input reads as level 0 (black).
type SolidSource struct {
	width    int
	height   int
	channels int
}

// NewSolidSource creates a solid-color frame source.
func NewSolidSource(width, height, channels int) *SolidSource {
	return &SolidSource{width: width, height: height, channels: channels}
}

// Process emits the frame for this tick, or Void if the configured
// dimensions are unusable.
func (s *SolidSource) Process(in []domain.Signal) domain.Signal {
	level := 0.0
	if len(in) > 0 {
		level = clamp01(in[0].Scalar())
	}

	frame, err := domain.NewUniformFrame(s.width, s.height, s.channels, byte(level*255))
	if err != nil {
		return domain.Void()
	}
	return domain.Image(frame)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

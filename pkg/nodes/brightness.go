package nodes

import "github.com/connormcn37/pipe-graph/pkg/domain"

// Brightness scales every byte of the frame on input 0 by a factor,
// clamping to [0, 255] and truncating. If input 1 carries a Value, it
// overrides the configured factor for that tick. The output is always a
// newly allocated frame, even at factor 1.0; the input frame is never
// touched. A missing or non-image input 0 yields Void.
type Brightness struct {
	factor float64
}

// NewBrightness creates a brightness transform with a default factor.
func NewBrightness(factor float64) *Brightness {
	return &Brightness{factor: factor}
}

// Process returns the scaled frame.
func (b *Brightness) Process(in []domain.Signal) domain.Signal {
	if len(in) == 0 {
		return domain.Void()
	}
	src, ok := in[0].Frame()
	if !ok {
		return domain.Void()
	}

	factor := b.factor
	if len(in) > 1 && in[1].Kind() == domain.KindValue {
		factor = in[1].Scalar()
	}

	data := src.Data()
	out := make([]byte, len(data))
	for i, px := range data {
		out[i] = scaleByte(px, factor)
	}

	frame, err := domain.NewFrame(src.Width(), src.Height(), src.Channels(), out)
	if err != nil {
		return domain.Void()
	}
	return domain.Image(frame)
}

func scaleByte(v byte, factor float64) byte {
	scaled := float64(v) * factor
	if scaled >= 255 {
		return 255
	}
	if scaled <= 0 {
		return 0
	}
	return byte(scaled)
}

package nodes

import (
	"fmt"
	"math"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// Waveform selects the shape an Oscillator cycles through.
type Waveform uint8

const (
	Sine Waveform = iota
	Square
	Saw
	Triangle
)

// ParseWaveform maps a graph-definition string to a Waveform.
func ParseWaveform(s string) (Waveform, error) {
	switch s {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "saw":
		return Saw, nil
	case "triangle":
		return Triangle, nil
	default:
		return Sine, fmt.Errorf("unknown waveform: %q", s)
	}
}

// Oscillator is a phase-accumulator control source. It emits a unipolar
// sample in [0, 1] each tick and then advances its phase by the frequency
// (in cycles per tick). If input 0 carries a Value, it overrides the
// configured frequency for that tick.
type Oscillator struct {
	shape Waveform
	freq  float64
	phase float64
}

// NewOscillator creates an oscillator with the given shape and frequency.
func NewOscillator(shape Waveform, freq float64) *Oscillator {
	return &Oscillator{shape: shape, freq: freq}
}

// Process samples the current phase, then advances it. Deterministic
// given call order.
func (o *Oscillator) Process(in []domain.Signal) domain.Signal {
	freq := o.freq
	if len(in) > 0 && in[0].Kind() == domain.KindValue {
		freq = in[0].Scalar()
	}

	v := o.sample()
	o.phase += freq
	o.phase -= math.Floor(o.phase) // keep phase in [0, 1)
	return domain.Value(v)
}

func (o *Oscillator) sample() float64 {
	switch o.shape {
	case Square:
		if o.phase < 0.5 {
			return 1
		}
		return 0
	case Saw:
		return o.phase
	case Triangle:
		return 1 - math.Abs(2*o.phase-1)
	default: // Sine
		return (math.Sin(2*math.Pi*o.phase) + 1) / 2
	}
}

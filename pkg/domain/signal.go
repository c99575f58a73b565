package domain

// Kind discriminates the Signal variants.
type Kind uint8

const (
	// KindVoid marks an edge that carries nothing this tick: the upstream
	// node has not produced yet, or deliberately emitted no output.
	KindVoid Kind = iota
	// KindValue carries a scalar control value.
	KindValue
	// KindImage carries a shared reference to a Frame payload.
	KindImage
)

// String returns the lowercase variant name used in logs and wire DTOs.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindImage:
		return "image"
	default:
		return "void"
	}
}

// Signal is the value carried on one graph edge for one tick. It has no
// identity of its own; it is a plain value, cheap to copy. Copying an
// Image signal shares the underlying *Frame; payload bytes are never
// duplicated by assignment. The zero value is Void.
type Signal struct {
	kind  Kind
	value float64
	frame *Frame
}

// Void returns the empty signal.
func Void() Signal { return Signal{} }

// Value returns a signal carrying a scalar control value.
func Value(v float64) Signal { return Signal{kind: KindValue, value: v} }

// Image returns a signal sharing the given frame. A nil frame degrades
// to Void rather than producing a broken image signal.
func Image(f *Frame) Signal {
	if f == nil {
		return Signal{}
	}
	return Signal{kind: KindImage, frame: f}
}

// Kind reports which variant the signal carries.
func (s Signal) Kind() Kind { return s.kind }

// IsVoid reports whether the signal carries nothing.
func (s Signal) IsVoid() bool { return s.kind == KindVoid }

// Scalar returns the carried control value, or 0 for any other variant.
// The zero fallback keeps arithmetic over optional inputs total: missing
// control wiring reads as 0 instead of failing.
func (s Signal) Scalar() float64 {
	if s.kind != KindValue {
		return 0
	}
	return s.value
}

// Frame returns the shared payload reference for Image signals, and
// (nil, false) for any other variant.
func (s Signal) Frame() (*Frame, bool) {
	if s.kind != KindImage {
		return nil, false
	}
	return s.frame, true
}

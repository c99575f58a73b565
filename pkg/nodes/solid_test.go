package nodes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

func TestSolidSourceLevels(t *testing.T) {
	src := NewSolidSource(2, 2, 3)

	// Half level truncates: 0.5 * 255 = 127.5 -> 127.
	out := src.Process([]domain.Signal{domain.Value(0.5)})
	frame, ok := out.Frame()
	require.True(t, ok, "expected an image output")
	require.Equal(t, 12, frame.Size())
	for i, b := range frame.Data() {
		require.Equal(t, byte(127), b, "byte %d", i)
	}

	// Levels clamp to [0, 1] before scaling.
	out = src.Process([]domain.Signal{domain.Value(3.0)})
	frame, ok = out.Frame()
	require.True(t, ok)
	require.Equal(t, byte(255), frame.Data()[0])

	out = src.Process([]domain.Signal{domain.Value(-1.0)})
	frame, ok = out.Frame()
	require.True(t, ok)
	require.Equal(t, byte(0), frame.Data()[0])
}

func TestSolidSourceDefaultsToBlack(t *testing.T) {
	src := NewSolidSource(4, 4, 1)

	for _, in := range [][]domain.Signal{nil, {domain.Void()}} {
		out := src.Process(in)
		frame, ok := out.Frame()
		require.True(t, ok)
		require.Equal(t, byte(0), frame.Data()[0])
	}
}

func TestSolidSourceFreshFramePerTick(t *testing.T) {
	src := NewSolidSource(2, 2, 1)
	in := []domain.Signal{domain.Value(1.0)}

	first, _ := src.Process(in).Frame()
	second, _ := src.Process(in).Frame()
	require.NotSame(t, first, second)
}

func TestSolidSourceBadDimensions(t *testing.T) {
	src := NewSolidSource(0, 4, 3)
	out := src.Process([]domain.Signal{domain.Value(0.5)})
	require.True(t, out.IsVoid())
}

package nodes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

func uniform(t *testing.T, w, h, c int, v byte) *domain.Frame {
	t.Helper()
	frame, err := domain.NewUniformFrame(w, h, c, v)
	require.NoError(t, err)
	return frame
}

func TestBrightnessScalesAndClamps(t *testing.T) {
	src := uniform(t, 2, 2, 3, 100)

	// Factor 2.0: 100 -> 200.
	out := NewBrightness(2.0).Process([]domain.Signal{domain.Image(src)})
	frame, ok := out.Frame()
	require.True(t, ok)
	require.Equal(t, src.Size(), frame.Size())
	for _, b := range frame.Data() {
		require.Equal(t, byte(200), b)
	}

	// Factor 3.0: 100 -> 300, clamped to 255.
	out = NewBrightness(3.0).Process([]domain.Signal{domain.Image(src)})
	frame, _ = out.Frame()
	for _, b := range frame.Data() {
		require.Equal(t, byte(255), b)
	}

	// The input frame stays untouched either way.
	require.Equal(t, byte(100), src.Data()[0])
}

func TestBrightnessControlInputOverridesFactor(t *testing.T) {
	src := uniform(t, 1, 1, 1, 100)
	b := NewBrightness(1.0)

	out := b.Process([]domain.Signal{domain.Image(src), domain.Value(2.0)})
	frame, _ := out.Frame()
	require.Equal(t, byte(200), frame.Data()[0])

	// A Void control slot falls back to the configured factor.
	out = b.Process([]domain.Signal{domain.Image(src), domain.Void()})
	frame, _ = out.Frame()
	require.Equal(t, byte(100), frame.Data()[0])
}

func TestBrightnessAlwaysAllocates(t *testing.T) {
	src := uniform(t, 2, 2, 3, 100)

	out := NewBrightness(1.0).Process([]domain.Signal{domain.Image(src)})
	frame, ok := out.Frame()
	require.True(t, ok)
	require.NotSame(t, src, frame, "factor 1.0 must still produce a new frame")
	require.True(t, bytes.Equal(src.Data(), frame.Data()))
}

func TestBrightnessNonImageInput(t *testing.T) {
	b := NewBrightness(2.0)
	require.True(t, b.Process(nil).IsVoid())
	require.True(t, b.Process([]domain.Signal{domain.Void()}).IsVoid())
	require.True(t, b.Process([]domain.Signal{domain.Value(5)}).IsVoid())
}

func TestBrightnessNegativeFactorClampsToZero(t *testing.T) {
	src := uniform(t, 1, 1, 1, 100)
	out := NewBrightness(-1.0).Process([]domain.Signal{domain.Image(src)})
	frame, _ := out.Frame()
	require.Equal(t, byte(0), frame.Data()[0])
}

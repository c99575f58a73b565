package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

func TestChainComposesInOrder(t *testing.T) {
	// (v * 2) then (v * 10): order matters only for readability here, but
	// the frame pipeline below depends on it.
	c := NewChain(NewScale(2), NewScale(10))
	out := c.Process([]domain.Signal{domain.Value(3)})
	assert.Equal(t, 60.0, out.Scalar())
}

func TestChainOverFrames(t *testing.T) {
	src, err := domain.NewUniformFrame(2, 2, 3, 50)
	require.NoError(t, err)

	// Double brightness, then clear channel 0.
	c := NewChain(NewBrightness(2.0)).Append(NewChannelClear(0))
	out := c.Process([]domain.Signal{domain.Image(src)})

	frame, ok := out.Frame()
	require.True(t, ok)
	require.Equal(t, []byte{0, 100, 100, 0, 100, 100, 0, 100, 100, 0, 100, 100}, frame.Data())
	require.Equal(t, byte(50), src.Data()[0], "chain must not touch its input frame")
}

func TestChainEmptyIsPassthrough(t *testing.T) {
	c := NewChain()

	src, err := domain.NewUniformFrame(1, 1, 1, 9)
	require.NoError(t, err)
	out := c.Process([]domain.Signal{domain.Image(src)})

	frame, ok := out.Frame()
	require.True(t, ok)
	assert.Same(t, src, frame)

	assert.True(t, c.Process(nil).IsVoid())
}

func TestConstantIgnoresInputs(t *testing.T) {
	k := NewConstant(0.5)
	assert.Equal(t, 0.5, k.Process(nil).Scalar())
	assert.Equal(t, 0.5, k.Process([]domain.Signal{domain.Value(99)}).Scalar())
}

func TestScaleDefaultsToZero(t *testing.T) {
	s := NewScale(4)
	assert.Equal(t, 0.0, s.Process(nil).Scalar())
	assert.Equal(t, 0.0, s.Process([]domain.Signal{domain.Void()}).Scalar())
	assert.Equal(t, 8.0, s.Process([]domain.Signal{domain.Value(2)}).Scalar())
	assert.Equal(t, domain.KindValue, s.Process(nil).Kind())
}

func TestPassthroughSharesFrame(t *testing.T) {
	src, err := domain.NewUniformFrame(2, 2, 1, 7)
	require.NoError(t, err)

	p := NewPassthrough()
	out := p.Process([]domain.Signal{domain.Image(src)})
	frame, ok := out.Frame()
	require.True(t, ok)
	assert.Same(t, src, frame)

	assert.True(t, p.Process(nil).IsVoid())
}

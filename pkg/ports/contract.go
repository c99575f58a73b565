package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// RunOutputTapContract verifies that an OutputTap implementation accepts
// the full range of signal variants across consecutive ticks without
// error. Adapter packages run it against their concrete taps.
func RunOutputTapContract(t *testing.T, tap OutputTap) {
	ctx := context.Background()

	frame, err := domain.NewUniformFrame(2, 2, 3, 200)
	require.NoError(t, err, "fixture frame")

	t.Run("Mixed variants", func(t *testing.T) {
		outputs := []domain.Signal{domain.Void(), domain.Value(0.5), domain.Image(frame)}
		require.NoError(t, tap.Record(ctx, 1, outputs), "Record tick 1")
	})

	t.Run("Consecutive ticks", func(t *testing.T) {
		for tick := uint64(2); tick <= 4; tick++ {
			outputs := []domain.Signal{domain.Value(float64(tick)), domain.Image(frame)}
			require.NoError(t, tap.Record(ctx, tick, outputs), "Record tick %d", tick)
		}
	})

	t.Run("Empty outputs", func(t *testing.T) {
		require.NoError(t, tap.Record(ctx, 5, nil), "Record with no outputs")
	})
}

package ports

import (
	"context"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// OutputTap mirrors committed node outputs to an external observer.
//
// Taps are driven by the host between ticks, never inside one, so an
// implementation may block on I/O. The outputs slice is ordered by
// NodeID and must be treated as read-only; Image signals share their
// frames with the pipeline's committed buffers.
type OutputTap interface {
	Record(ctx context.Context, tick uint64, outputs []domain.Signal) error
}

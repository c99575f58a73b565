package runner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	pipegraph "github.com/connormcn37/pipe-graph"
	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/nodes"
)

// recordingTap captures Record calls; fail makes every call error.
type recordingTap struct {
	mu    sync.Mutex
	ticks []uint64
	last  []domain.Signal
	fail  error
}

func (rt *recordingTap) Record(_ context.Context, tick uint64, outputs []domain.Signal) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.fail != nil {
		return rt.fail
	}
	rt.ticks = append(rt.ticks, tick)
	rt.last = append([]domain.Signal(nil), outputs...)
	return nil
}

func newEngine(t *testing.T) *pipegraph.Engine {
	t.Helper()
	eng := pipegraph.New()
	if _, err := eng.AddNode("osc", nodes.NewOscillator(nodes.Saw, 0.25)); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	return eng
}

func TestRunSpendsTickBudget(t *testing.T) {
	eng := newEngine(t)
	r := New(eng, WithMaxTicks(5))

	ticks, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ticks != 5 {
		t.Errorf("ticks = %d, want 5", ticks)
	}
	if eng.Tick() != 5 {
		t.Errorf("engine tick = %d, want 5", eng.Tick())
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	eng := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ticks, err := New(eng).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ticks != 0 {
		t.Errorf("ticks = %d, want 0 for pre-cancelled context", ticks)
	}
}

func TestRunCancelsDuringPacedLoop(t *testing.T) {
	eng := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var ticks uint64
	var err error
	go func() {
		defer close(done)
		ticks, err = New(eng, WithInterval(time.Hour)).Run(ctx)
	}()

	// The first tick runs immediately; the loop then parks on the ticker
	// until the context ends it.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
}

func TestRunMirrorsOutputsToTap(t *testing.T) {
	eng := newEngine(t)
	tap := &recordingTap{}

	ticks, err := New(eng, WithMaxTicks(3), WithTap(tap)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ticks != 3 {
		t.Fatalf("ticks = %d, want 3", ticks)
	}

	tap.mu.Lock()
	defer tap.mu.Unlock()
	if len(tap.ticks) != 3 {
		t.Fatalf("tap recorded %d ticks, want 3", len(tap.ticks))
	}
	for i, tick := range tap.ticks {
		if tick != uint64(i+1) {
			t.Errorf("record %d carries tick %d, want %d", i, tick, i+1)
		}
	}
	// Saw at 0.25: tick 3 committed sample 0.5.
	if len(tap.last) != 1 || tap.last[0].Scalar() != 0.5 {
		t.Errorf("final mirrored outputs = %v", tap.last)
	}
}

func TestRunSurvivesTapFailure(t *testing.T) {
	eng := newEngine(t)
	tap := &recordingTap{fail: errors.New("mirror down")}

	ticks, err := New(eng, WithMaxTicks(4), WithTap(tap)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ticks != 4 {
		t.Errorf("ticks = %d, want 4", ticks)
	}
}

func TestRunPropagatesStepErrors(t *testing.T) {
	eng := pipegraph.New()
	if _, err := eng.AddNode("orphan", nodes.NewPassthrough(), 9); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}

	ticks, err := New(eng, WithMaxTicks(2)).Run(context.Background())
	if !errors.Is(err, domain.ErrDanglingInput) {
		t.Fatalf("err = %v, want ErrDanglingInput", err)
	}
	if ticks != 0 {
		t.Errorf("ticks = %d, want 0", ticks)
	}
}

func TestRunIDsAreUnique(t *testing.T) {
	a := New(newEngine(t))
	b := New(newEngine(t))
	if a.RunID() == "" || a.RunID() == b.RunID() {
		t.Errorf("run ids not unique: %q vs %q", a.RunID(), b.RunID())
	}
}

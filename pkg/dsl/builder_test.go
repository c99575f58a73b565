package dsl

import (
	"context"
	"errors"
	"testing"

	pipegraph "github.com/connormcn37/pipe-graph"
	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/nodes"
)

func TestBuilderResolvesForwardReferences(t *testing.T) {
	// 1. Declare the consumer before its source.
	b := New()
	b.Add("echo", nodes.NewPassthrough(), "osc").
		Add("osc", nodes.NewOscillator(nodes.Saw, 0.5))

	eng := pipegraph.New()
	ids, err := b.Build(eng)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// 2. Declaration order decides identifiers.
	if ids["echo"] != 0 || ids["osc"] != 1 {
		t.Fatalf("ids = %v, want echo=0 osc=1", ids)
	}

	// 3. The wiring works: echo trails osc by one tick.
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := eng.Step(ctx); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
	out, err := eng.Output(ids["echo"])
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if out.Scalar() != 0 {
		t.Errorf("echo = %v, want osc's tick-1 sample 0", out.Scalar())
	}
}

func TestBuilderSelfReference(t *testing.T) {
	b := New()
	b.Add("loop", nodes.NewScale(1), "loop")

	eng := pipegraph.New()
	if _, err := b.Build(eng); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := eng.Step(context.Background()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
}

func TestBuilderErrors(t *testing.T) {
	t.Run("Unknown input name", func(t *testing.T) {
		b := New()
		b.Add("a", nodes.NewConstant(1), "ghost")
		if _, err := b.Build(pipegraph.New()); err == nil {
			t.Fatal("expected unknown-input error")
		}
	})

	t.Run("Duplicate name", func(t *testing.T) {
		b := New()
		b.Add("a", nodes.NewConstant(1)).Add("a", nodes.NewConstant(2))
		if _, err := b.Build(pipegraph.New()); err == nil {
			t.Fatal("expected duplicate-name error")
		}
	})

	t.Run("Empty name", func(t *testing.T) {
		b := New()
		b.Add("", nodes.NewConstant(1))
		if _, err := b.Build(pipegraph.New()); err == nil {
			t.Fatal("expected empty-name error")
		}
	})

	t.Run("Nil logic", func(t *testing.T) {
		b := New()
		b.Add("a", nil)
		_, err := b.Build(pipegraph.New())
		if !errors.Is(err, domain.ErrNilLogic) {
			t.Fatalf("err = %v, want ErrNilLogic", err)
		}
	})
}

func TestBuilderOnPopulatedEngine(t *testing.T) {
	eng := pipegraph.New()
	if _, err := eng.AddNode("existing", nodes.NewConstant(1)); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}

	b := New()
	b.Add("a", nodes.NewConstant(2), "a")
	ids, err := b.Build(eng)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if ids["a"] != 1 {
		t.Errorf("id = %d, want 1 (offset past existing nodes)", ids["a"])
	}
	if err := eng.Step(context.Background()); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
}

package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/connormcn37/pipe-graph/internal/logging"
	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/ports"
)

// Pipeline owns the ordered arena of node containers and drives the
// three-phase tick. Node identifiers are positions in the arena; wiring
// is resolved through a per-tick snapshot, never through live references
// into node state, so cycles and registration order cannot deadlock or
// change results.
//
// A Pipeline is not safe for concurrent use; the facade serializes
// callers so at most one Step runs at a time.
type Pipeline struct {
	nodes   []container
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	workers int

	sealed bool
	tick   uint64

	// Per-tick scratch, allocated once at seal time.
	snapshot []domain.Signal
	results  []domain.Signal
}

// New creates an empty pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:  logging.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddNode appends a node container and returns its stable identifier.
// Wiring may reference identifiers not registered yet (forward
// references) and the node's own identifier (feedback); both read Void
// until the target has committed an output. Negative identifiers are
// rejected here; identifiers that never materialize are rejected when
// the first Step seals the graph.
func (p *Pipeline) AddNode(name string, logic ports.NodeLogic, inputs []domain.NodeID) (domain.NodeID, error) {
	if p.sealed {
		return domain.InvalidNodeID, fmt.Errorf("%w: cannot register %q after the first step", domain.ErrPipelineSealed, name)
	}
	if logic == nil {
		return domain.InvalidNodeID, fmt.Errorf("%w: node %q", domain.ErrNilLogic, name)
	}
	for i, in := range inputs {
		if in < 0 {
			return domain.InvalidNodeID, fmt.Errorf("%w: node %q input %d is %d", domain.ErrInvalidInput, name, i, int(in))
		}
	}

	id := domain.NodeID(len(p.nodes))
	wiring := make([]domain.NodeID, len(inputs))
	copy(wiring, inputs)
	p.nodes = append(p.nodes, container{name: name, logic: logic, inputs: wiring})

	p.logger.Debug("node registered", "id", int(id), "name", name, "inputs", len(wiring))
	return id, nil
}

// seal freezes the graph and verifies that every wired identifier was
// registered. A forward reference that never materialized only becomes
// detectable here: the node set is final once stepping begins.
func (p *Pipeline) seal() error {
	for i := range p.nodes {
		c := &p.nodes[i]
		for j, in := range c.inputs {
			if int(in) >= len(p.nodes) {
				return fmt.Errorf("%w: node %d (%q) input %d references %d, but only %d nodes are registered",
					domain.ErrDanglingInput, i, c.name, j, int(in), len(p.nodes))
			}
		}
	}
	p.sealed = true
	p.snapshot = make([]domain.Signal, len(p.nodes))
	p.results = make([]domain.Signal, len(p.nodes))
	p.logger.Debug("pipeline sealed", "nodes", len(p.nodes))
	return nil
}

// Step runs one tick in three strict phases.
//
// Phase 1 (snapshot) copies every node's active output, in identifier
// order, into a list that stays frozen for the rest of the tick. Phase 2
// (compute) resolves each node's inputs from that snapshot only and
// records the returned signal in a result slot owned by that node alone:
// no commit from this tick is visible to any compute in the same tick,
// so evaluation order and graph cycles cannot affect results. A cycle
// is exactly a one-tick delay. Phase 3 (commit) publishes every recorded
// result.
//
// If Step returns nil, every node committed consistently with phase 2;
// a sealing error returns before any phase runs and commits nothing.
// ctx flows to lifecycle hooks; the tick itself is atomic and is never
// cancelled mid-flight.
func (p *Pipeline) Step(ctx context.Context) error {
	if !p.sealed {
		if err := p.seal(); err != nil {
			return err
		}
	}

	start := time.Now()
	p.tick++

	if p.hooks.OnTickBegin != nil {
		p.hooks.OnTickBegin(ctx, &domain.TickEvent{Tick: p.tick, Nodes: len(p.nodes)})
	}

	for i := range p.nodes {
		p.snapshot[i] = p.nodes[i].output()
	}

	if p.workers > 1 && len(p.nodes) > 1 {
		p.computeParallel(ctx)
	} else {
		for i := range p.nodes {
			p.results[i] = p.compute(ctx, i)
		}
	}

	for i := range p.nodes {
		p.nodes[i].commit(p.results[i])
	}

	took := time.Since(start)
	if p.hooks.OnTickEnd != nil {
		p.hooks.OnTickEnd(ctx, &domain.TickEvent{Tick: p.tick, Nodes: len(p.nodes), Duration: took})
	}
	p.logger.Debug("tick complete", "tick", p.tick, "nodes", len(p.nodes), "took", took)
	return nil
}

// compute resolves node i's inputs from the snapshot and invokes its
// logic. A panicking logic poisons only its own slot: the result
// degrades to Void for this tick and the pipeline keeps going.
func (p *Pipeline) compute(ctx context.Context, i int) domain.Signal {
	c := &p.nodes[i]
	in := make([]domain.Signal, len(c.inputs))
	for j, src := range c.inputs {
		in[j] = p.snapshot[src]
	}

	start := time.Now()
	out, recovered := invoke(c.logic, in)
	took := time.Since(start)

	if recovered != nil {
		p.logger.Warn("node logic panicked, output degraded to void",
			"id", i, "name", c.name, "tick", p.tick, "panic", recovered)
		if p.hooks.OnNodeRecovered != nil {
			p.hooks.OnNodeRecovered(ctx, &domain.NodeEvent{
				Tick: p.tick, NodeID: domain.NodeID(i), Name: c.name,
				OutputKind: domain.KindVoid, Duration: took,
			})
		}
		return domain.Void()
	}

	if p.hooks.OnNodeProcessed != nil {
		p.hooks.OnNodeProcessed(ctx, &domain.NodeEvent{
			Tick: p.tick, NodeID: domain.NodeID(i), Name: c.name,
			OutputKind: out.Kind(), Duration: took,
		})
	}
	return out
}

// computeParallel fans phase 2 across the worker pool. Each worker reads
// only the frozen snapshot and writes only result slots handed to it, so
// the outcome is identical to the serial path.
func (p *Pipeline) computeParallel(ctx context.Context) {
	workers := p.workers
	if workers > len(p.nodes) {
		workers = len(p.nodes)
	}

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				p.results[i] = p.compute(ctx, i)
			}
		}()
	}
	for i := range p.nodes {
		next <- i
	}
	close(next)
	wg.Wait()
}

// invoke isolates the recover from the hot loop.
func invoke(logic ports.NodeLogic, in []domain.Signal) (out domain.Signal, recovered any) {
	defer func() {
		if r := recover(); r != nil {
			recovered = r
		}
	}()
	return logic.Process(in), nil
}

// Len returns the number of registered nodes.
func (p *Pipeline) Len() int { return len(p.nodes) }

// Tick returns the number of completed ticks.
func (p *Pipeline) Tick() uint64 { return p.tick }

// Output returns the committed (active) output of one node.
func (p *Pipeline) Output(id domain.NodeID) (domain.Signal, error) {
	if int(id) < 0 || int(id) >= len(p.nodes) {
		return domain.Signal{}, fmt.Errorf("%w: id %d", domain.ErrUnknownNode, int(id))
	}
	return p.nodes[id].output(), nil
}

// Outputs copies every node's committed output, in identifier order.
// Image entries share their frames with the committed buffers.
func (p *Pipeline) Outputs() []domain.Signal {
	out := make([]domain.Signal, len(p.nodes))
	for i := range p.nodes {
		out[i] = p.nodes[i].output()
	}
	return out
}

// Info describes the registered nodes for introspection tools.
func (p *Pipeline) Info() []domain.NodeInfo {
	infos := make([]domain.NodeInfo, len(p.nodes))
	for i := range p.nodes {
		c := &p.nodes[i]
		inputs := make([]domain.NodeID, len(c.inputs))
		copy(inputs, c.inputs)
		infos[i] = domain.NodeInfo{
			ID:     domain.NodeID(i),
			Name:   c.name,
			Kind:   logicKind(c.logic),
			Inputs: inputs,
		}
	}
	return infos
}

// logicKind derives a short diagnostic label from the logic's concrete
// type, e.g. "*nodes.Brightness" -> "brightness".
func logicKind(logic ports.NodeLogic) string {
	s := strings.TrimPrefix(fmt.Sprintf("%T", logic), "*")
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(s)
}

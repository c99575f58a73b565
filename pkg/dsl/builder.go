package dsl

import (
	"fmt"

	pipegraph "github.com/connormcn37/pipe-graph"
	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/ports"
)

type nodeSpec struct {
	name   string
	logic  ports.NodeLogic
	inputs []string
}

// Builder collects named node declarations and resolves the wiring when
// the graph is built. Declaration order becomes identifier order.
type Builder struct {
	specs []nodeSpec
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{}
}

// Add declares a node wired to the named inputs. Input names may refer to
// nodes declared later, or to the node itself. Name collisions and
// unknown references surface at Build time.
func (b *Builder) Add(name string, logic ports.NodeLogic, inputs ...string) *Builder {
	b.specs = append(b.specs, nodeSpec{name: name, logic: logic, inputs: inputs})
	return b
}

// Build resolves every name, registers the nodes against the engine in
// declaration order, and returns the name -> identifier mapping. The
// engine is left untouched if resolution fails.
func (b *Builder) Build(eng *pipegraph.Engine) (map[string]domain.NodeID, error) {
	base := domain.NodeID(eng.Len())

	ids := make(map[string]domain.NodeID, len(b.specs))
	for i, spec := range b.specs {
		if spec.name == "" {
			return nil, fmt.Errorf("node %d has an empty name", i)
		}
		if _, dup := ids[spec.name]; dup {
			return nil, fmt.Errorf("duplicate node name: %s", spec.name)
		}
		if spec.logic == nil {
			return nil, fmt.Errorf("node %s: %w", spec.name, domain.ErrNilLogic)
		}
		ids[spec.name] = base + domain.NodeID(i)
	}

	wiring := make([][]domain.NodeID, len(b.specs))
	for i, spec := range b.specs {
		wiring[i] = make([]domain.NodeID, len(spec.inputs))
		for j, input := range spec.inputs {
			id, ok := ids[input]
			if !ok {
				return nil, fmt.Errorf("node %s references unknown input: %s", spec.name, input)
			}
			wiring[i][j] = id
		}
	}

	for i, spec := range b.specs {
		id, err := eng.AddNode(spec.name, spec.logic, wiring[i]...)
		if err != nil {
			return nil, fmt.Errorf("failed to register node %s: %w", spec.name, err)
		}
		if id != ids[spec.name] {
			return nil, fmt.Errorf("engine assigned id %d to node %s, expected %d", id, spec.name, ids[spec.name])
		}
	}

	return ids, nil
}

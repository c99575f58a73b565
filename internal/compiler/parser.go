// Package compiler turns graph definition files into resolved build
// plans: node names become the integer identifiers the engine wires by.
package compiler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// Document is the on-disk shape of a graph definition.
type Document struct {
	Name  string    `yaml:"name" json:"name"`
	Nodes []NodeDef `yaml:"nodes" json:"nodes"`
}

// NodeDef declares one node: what to build (kind + params) and what it
// reads (input names). Inputs may reference any node in the file,
// including ones declared later and the node itself.
type NodeDef struct {
	Name   string         `yaml:"name" json:"name"`
	Kind   string         `yaml:"kind" json:"kind"`
	Params map[string]any `yaml:"params" json:"params"`
	Inputs []string       `yaml:"inputs" json:"inputs"`
}

// Plan is a validated document with every input resolved to the
// identifier the engine will assign: position in the file.
type Plan struct {
	Name  string
	Nodes []PlannedNode
}

// PlannedNode mirrors NodeDef with resolved wiring.
type PlannedNode struct {
	Name   string
	Kind   string
	Params map[string]any
	Inputs []domain.NodeID
}

// Parser is responsible for converting raw bytes into a Plan.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a graph definition from disk.
func (p *Parser) ParseFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph definition: %w", err)
	}
	return p.Parse(data)
}

// Parse decodes a YAML graph definition and resolves its wiring.
func (p *Parser) Parse(data []byte) (*Plan, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse graph definition: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("graph definition has no nodes")
	}

	ids := make(map[string]domain.NodeID, len(doc.Nodes))
	for i, def := range doc.Nodes {
		if def.Name == "" {
			return nil, fmt.Errorf("node %d missing name", i)
		}
		if def.Kind == "" {
			return nil, fmt.Errorf("node %s missing kind", def.Name)
		}
		if _, dup := ids[def.Name]; dup {
			return nil, fmt.Errorf("duplicate node name: %s", def.Name)
		}
		ids[def.Name] = domain.NodeID(i)
	}

	plan := &Plan{Name: doc.Name, Nodes: make([]PlannedNode, len(doc.Nodes))}
	for i, def := range doc.Nodes {
		inputs := make([]domain.NodeID, len(def.Inputs))
		for j, input := range def.Inputs {
			id, ok := ids[input]
			if !ok {
				return nil, fmt.Errorf("node %s references unknown input: %s", def.Name, input)
			}
			inputs[j] = id
		}
		plan.Nodes[i] = PlannedNode{
			Name:   def.Name,
			Kind:   def.Kind,
			Params: def.Params,
			Inputs: inputs,
		}
	}

	return plan, nil
}

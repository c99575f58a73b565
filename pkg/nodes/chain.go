package nodes

import (
	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/ports"
)

// Chain composes single-input logics into one node: input 0 flows through
// every stage in order and the last stage's output is the chain's output.
// An empty chain acts as a pass-through. Stages see exactly one input.
type Chain struct {
	stages []ports.NodeLogic
}

// NewChain creates a chain over the given stages.
func NewChain(stages ...ports.NodeLogic) *Chain {
	return &Chain{stages: stages}
}

// Append adds a stage to the end of the chain. Call before stepping
// begins; the chain is not safe to grow mid-run.
func (c *Chain) Append(logic ports.NodeLogic) *Chain {
	c.stages = append(c.stages, logic)
	return c
}

// Process pipes input 0 through every stage.
func (c *Chain) Process(in []domain.Signal) domain.Signal {
	var sig domain.Signal
	if len(in) > 0 {
		sig = in[0]
	}
	for _, stage := range c.stages {
		sig = stage.Process([]domain.Signal{sig})
	}
	return sig
}

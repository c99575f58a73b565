/*
Package pipegraph is a tick-based dataflow engine for mixed frame and
control signals, designed for building deterministic processing graphs:
video-style effect chains, modulation networks, and feedback loops.

It implements a "snapshot, compute, commit" execution model: every tick,
each node reads the outputs its inputs committed on the previous tick and
publishes exactly one new output. Because reads always hit the previous
tick, there is no evaluation order to get right and no cycle to detect; a
feedback edge simply behaves as a one-tick delay line.

# Concept

pipegraph treats your processing pipeline as a flat arena of nodes wired
by stable integer identifiers. The engine manages double-buffered outputs,
snapshot isolation, and the tick clock, while your application ("Host")
drives the clock and decides what the node logic does. This Hexagonal
Architecture allows pipegraph to be embedded in any surface: CLI, HTTP
server, or a render loop.

# Key Features

  - Deterministic Execution: Given the same graph and node state, every
    tick is reproducible, serial or parallel.
  - Cycles Without Ceremony: Feedback wiring needs no special casing; it
    is legal by construction and costs one tick of latency.
  - Cheap Signals: Image payloads move through the graph by reference.
    Nodes copy bytes only when they change them.
  - Crash Isolation: A panicking node degrades its own output to Void for
    that tick; the rest of the graph keeps running.

# Usage

Register nodes against the Engine, then drive the clock.

	package main

	import (
		"context"
		"fmt"
		"log"

		pipegraph "github.com/connormcn37/pipe-graph"
		"github.com/connormcn37/pipe-graph/pkg/domain"
		"github.com/connormcn37/pipe-graph/pkg/nodes"
	)

	func main() {
		eng := pipegraph.New()

		// A constant level feeding a solid-color source.
		level, err := eng.AddNode("level", nodes.NewConstant(0.5))
		if err != nil {
			log.Fatal(err)
		}
		src, err := eng.AddNode("src", nodes.NewSolidSource(64, 64, 3), level)
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		for i := 0; i < 3; i++ {
			if err := eng.Step(ctx); err != nil {
				log.Fatal(err)
			}
		}

		out, _ := eng.Output(src)
		if frame, ok := out.Frame(); ok {
			fmt.Println("frame bytes:", frame.Size())
		}
	}

Use pkg/runner to drive ticks on an interval, pkg/dsl or internal YAML
graph files to define wiring declaratively, and pkg/adapters to observe a
running graph over HTTP or Redis.
*/
package pipegraph

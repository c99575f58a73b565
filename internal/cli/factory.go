// Package cli assembles engines from graph definition files with the
// conventions shared by all commands.
package cli

import (
	"fmt"
	"log/slog"

	pipegraph "github.com/connormcn37/pipe-graph"
	"github.com/connormcn37/pipe-graph/internal/compiler"
	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/nodes"
	"github.com/connormcn37/pipe-graph/pkg/registry"
)

// BuildOptions contains the engine knobs exposed as command flags.
type BuildOptions struct {
	Workers int
	Hooks   domain.LifecycleHooks
}

// LoadEngine parses a graph definition file and assembles an engine
// from it.
func LoadEngine(path string, opts BuildOptions, logger *slog.Logger) (*pipegraph.Engine, error) {
	plan, err := compiler.NewParser().ParseFile(path)
	if err != nil {
		return nil, err
	}
	return BuildEngine(plan, opts, logger)
}

// BuildEngine initializes an engine from a resolved plan with standard
// CLI conventions: the builtin node catalog, the shared logger, and
// optional worker parallelism and lifecycle hooks.
func BuildEngine(plan *compiler.Plan, opts BuildOptions, logger *slog.Logger) (*pipegraph.Engine, error) {
	reg := registry.NewRegistry()
	nodes.RegisterBuiltins(reg)

	engine := pipegraph.New(
		pipegraph.WithName(plan.Name),
		pipegraph.WithLogger(logger),
		pipegraph.WithWorkers(opts.Workers),
		pipegraph.WithLifecycleHooks(opts.Hooks),
	)

	for _, def := range plan.Nodes {
		logic, err := reg.New(def.Kind, def.Params)
		if err != nil {
			return nil, fmt.Errorf("error building node %s: %w", def.Name, err)
		}
		if _, err := engine.AddNode(def.Name, logic, def.Inputs...); err != nil {
			return nil, fmt.Errorf("error registering node %s: %w", def.Name, err)
		}
	}

	return engine, nil
}

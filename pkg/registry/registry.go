// Package registry maps node kind names to logic factories, so graph
// definitions (YAML files, CLI flags) can instantiate nodes by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/connormcn37/pipe-graph/pkg/ports"
)

// Factory builds a node logic from a raw parameter map, as parsed from a
// graph definition. It validates the parameters and returns a ready logic
// or an error.
type Factory func(params map[string]any) (ports.NodeLogic, error)

// Registry manages the available node kinds.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a node kind to the registry.
// If a kind with the same name exists, it is overwritten.
func (r *Registry) Register(kind string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = factory
}

// New looks up a kind by name and builds a logic from the given
// parameters. Returns an error if the kind is not registered.
func (r *Registry) New(kind string, params map[string]any) (ports.NodeLogic, error) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("node kind not found: %s", kind)
	}

	return factory(params)
}

// Has reports whether a kind is registered. Useful for validating a
// graph definition before building it.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[kind]
	return ok
}

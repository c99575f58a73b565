/*
Package nodes provides a library of ready-made node logics: control
sources (constants, oscillators), frame sources, and copy-on-write frame
transforms (brightness, crop, channel surgery).

Every logic here follows the same contract: it computes strictly from the
inputs handed to it plus its own private state, tolerates missing or
mistyped inputs by producing a documented default (usually Void), and
never writes into a frame it received. Transforms that change pixel
content allocate a fresh frame; pass-throughs forward the shared one.

Use the constructors directly with an Engine, or install the kind names
into a registry for YAML-defined graphs:

	reg := registry.NewRegistry()
	nodes.RegisterBuiltins(reg)
	logic, err := reg.New("brightness", map[string]any{"factor": 2.0})
*/
package nodes

/*
Package dsl provides a small Go DSL for constructing pipe-graph wiring by
node name instead of raw identifiers.

Identifiers are assigned in registration order, which makes hand-wiring
forward references awkward: the upstream id does not exist yet when the
downstream node is declared. The builder defers resolution until Build,
so nodes can reference any name declared anywhere in the program,
including their own (feedback).

Example usage:

	b := dsl.New()
	b.Add("echo", nodes.NewPassthrough(), "osc") // forward reference
	b.Add("osc", nodes.NewOscillator(nodes.Sine, 0.1))

	eng := pipegraph.New()
	ids, err := b.Build(eng)
	if err != nil {
		log.Fatal(err)
	}
	// ids["osc"], ids["echo"] drive Output lookups.
*/
package dsl

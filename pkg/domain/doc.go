/*
Package domain contains the core data model for the pipe-graph engine.

It defines the values that flow on graph edges and the identifiers that
wire nodes together. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Signal: the value carried on one edge for one tick (Void, Value, or Image).
  - Frame: an immutable, shareable pixel payload referenced by Image signals.
  - NodeID: the stable integer position assigned to a node at registration.
  - NodeInfo: an introspection record describing one registered node.
  - LifecycleHooks: optional observability callbacks fired around each tick.
*/
package domain

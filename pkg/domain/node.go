package domain

// NodeID is the stable identifier of a node within a pipeline: the
// 0-based position assigned at registration time, monotonically
// increasing, never reused or reordered. Wiring that refers to a NodeID
// stays valid for the pipeline's lifetime.
type NodeID int

// InvalidNodeID is returned by registration operations on failure.
const InvalidNodeID NodeID = -1

// NodeInfo describes one registered node for introspection and
// presentation layers. Name is diagnostic only and not required unique;
// Kind is a free-form label derived from the logic implementation.
type NodeInfo struct {
	ID     NodeID   `json:"id"`
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Inputs []NodeID `json:"inputs"`
}

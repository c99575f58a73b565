package domain

import "errors"

// ErrNilLogic is returned when a node is registered without logic.
var ErrNilLogic = errors.New("nil node logic")

// ErrInvalidInput is returned when a registration wires a malformed
// (negative) input identifier.
var ErrInvalidInput = errors.New("invalid input reference")

// ErrDanglingInput is returned when stepping begins while wiring still
// references an identifier that was never registered.
var ErrDanglingInput = errors.New("dangling input reference")

// ErrPipelineSealed is returned when registering a node after stepping
// has begun. The graph is fixed once the first tick runs.
var ErrPipelineSealed = errors.New("pipeline is sealed")

// ErrUnknownNode is returned when querying an identifier that does not
// exist in the pipeline.
var ErrUnknownNode = errors.New("unknown node")

// ErrInvalidFrame is returned when frame dimensions and byte length
// disagree.
var ErrInvalidFrame = errors.New("invalid frame geometry")

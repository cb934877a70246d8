package domain

import "go.trai.ch/zerr"

var (
	// ErrTypeMismatch is returned when a link would connect pins of
	// incompatible types. The graph is left unchanged.
	ErrTypeMismatch = zerr.New("pin type mismatch")

	// ErrInputConnected is returned when adding a link to an input pin that
	// already has one. Existing links are never silently replaced.
	ErrInputConnected = zerr.New("input already connected")

	// ErrUnknownNode is returned when an id does not name a live node.
	ErrUnknownNode = zerr.New("unknown node")

	// ErrUnknownPin is returned when a pin index is out of range for the
	// node's type.
	ErrUnknownPin = zerr.New("unknown pin")

	// ErrUnknownType is returned when a plan names a node type the registry
	// does not know.
	ErrUnknownType = zerr.New("unknown node type")

	// ErrNoOutputNode is returned by evaluation when the graph has no
	// designated output node.
	ErrNoOutputNode = zerr.New("no output node designated")

	// ErrCycleDetected is returned when the designated output's dependency
	// closure contains a cycle. No node computes in that case.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrInvalidParameter is a node-local failure: a parameter value is out
	// of its declared range or shape.
	ErrInvalidParameter = zerr.New("invalid parameter")

	// ErrMissingRequiredInput is a node-local failure: a required input pin
	// has no resolved value.
	ErrMissingRequiredInput = zerr.New("missing required input")

	// ErrComputeFailed is a node-local failure: the compute function violated
	// an internal invariant, e.g. produced degenerate geometry.
	ErrComputeFailed = zerr.New("compute failed")

	// ErrUpstreamFailure marks a node poisoned by a failed dependency. The
	// "origin" metadata names the node whose own failure started the chain.
	ErrUpstreamFailure = zerr.New("upstream node failed")
)

package domain

import "context"

// PinType is the closed set of value types a pin can carry.
type PinType int

const (
	// PinTypeNone is the zero value; no real pin declares it.
	PinTypeNone PinType = iota
	// PinTypeMesh carries polygonal geometry.
	PinTypeMesh
	// PinTypeFloat carries a 64-bit float scalar.
	PinTypeFloat
	// PinTypeInt carries a 64-bit integer scalar.
	PinTypeInt
	// PinTypeBool carries a boolean.
	PinTypeBool
	// PinTypeVec2 carries a 2-component float vector.
	PinTypeVec2
	// PinTypeVec3 carries a 3-component float vector.
	PinTypeVec3
)

// String returns the lowercase name of the pin type.
func (t PinType) String() string {
	switch t {
	case PinTypeMesh:
		return "mesh"
	case PinTypeFloat:
		return "float"
	case PinTypeInt:
		return "int"
	case PinTypeBool:
		return "bool"
	case PinTypeVec2:
		return "vec2"
	case PinTypeVec3:
		return "vec3"
	default:
		return "none"
	}
}

// Compatible reports whether a value of type src may feed a pin of type dst.
// Identical types always connect; the only widening allowed is Int into Float.
func Compatible(src, dst PinType) bool {
	if src == dst {
		return src != PinTypeNone
	}
	return src == PinTypeInt && dst == PinTypeFloat
}

// PinDef declares one pin of a node type: its display name, value type, and
// whether the engine may leave it unconnected.
type PinDef struct {
	Name     string
	Type     PinType
	Optional bool
}

// ComputeFunc is a node type's computation. It must be referentially
// transparent: identical inputs and params always yield identical outputs.
// The whole caching and dirty-tracking design relies on this. Implementations
// must not mutate the input values; clone a mesh before changing it.
type ComputeFunc func(ctx context.Context, inputs []Value, params Params) ([]Value, error)

// NodeType describes a registered node kind: its pin signatures, default
// parameters, and compute function. Instances are shared between every node
// of the kind and must be treated as immutable after registration.
type NodeType struct {
	Name          string
	Category      string
	Inputs        []PinDef
	Outputs       []PinDef
	DefaultParams Params
	Compute       ComputeFunc
}

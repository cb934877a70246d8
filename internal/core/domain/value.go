package domain

// Value is what flows along a link during evaluation. A Value with Valid set
// carries a payload matching Type; a Value with Valid unset but a non-zero
// Type is a tombstone produced by a failed node, and Origin names the node
// whose failure poisoned it. The zero Value stands for an unconnected input.
type Value struct {
	Type  PinType
	Valid bool

	// Origin is set on tombstones only: the node whose own failure started
	// the error chain.
	Origin NodeID

	Mesh  *Mesh
	Float float64
	Int   int64
	Bool  bool
	Vec2  [2]float32
	Vec3  [3]float32
}

// MeshValue wraps a mesh.
func MeshValue(m *Mesh) Value { return Value{Type: PinTypeMesh, Valid: true, Mesh: m} }

// FloatVal wraps a float scalar.
func FloatVal(v float64) Value { return Value{Type: PinTypeFloat, Valid: true, Float: v} }

// IntVal wraps an int scalar.
func IntVal(v int64) Value { return Value{Type: PinTypeInt, Valid: true, Int: v} }

// BoolVal wraps a bool.
func BoolVal(v bool) Value { return Value{Type: PinTypeBool, Valid: true, Bool: v} }

// Vec2Val wraps a 2-component vector.
func Vec2Val(v [2]float32) Value { return Value{Type: PinTypeVec2, Valid: true, Vec2: v} }

// Vec3Val wraps a 3-component vector.
func Vec3Val(v [3]float32) Value { return Value{Type: PinTypeVec3, Valid: true, Vec3: v} }

// Tombstone returns an invalid value of the given type attributed to origin.
func Tombstone(t PinType, origin NodeID) Value {
	return Value{Type: t, Origin: origin}
}

// Absent reports whether the value stands for an unconnected input.
func (v Value) Absent() bool {
	return v.Type == PinTypeNone
}

// Widen converts the value to the destination pin type where the type system
// allows it (Int into Float). Values already of the destination type pass
// through unchanged.
func (v Value) Widen(dst PinType) Value {
	if v.Valid && v.Type == PinTypeInt && dst == PinTypeFloat {
		return FloatVal(float64(v.Int))
	}
	return v
}

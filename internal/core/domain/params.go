package domain

import (
	"fmt"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ParamKind tags the concrete type held by a ParamValue.
type ParamKind int

const (
	// ParamNone is the zero value of an absent parameter.
	ParamNone ParamKind = iota
	// ParamFloat holds a float64.
	ParamFloat
	// ParamInt holds an int64.
	ParamInt
	// ParamBool holds a bool.
	ParamBool
	// ParamString holds a string.
	ParamString
	// ParamVec2 holds a [2]float32.
	ParamVec2
	// ParamVec3 holds a [3]float32.
	ParamVec3
)

// ParamValue is one entry of a node's parameter block. It is a closed tagged
// union rather than an any so parameter blocks stay serializable and
// comparable without reflection.
type ParamValue struct {
	Kind ParamKind

	f float64
	i int64
	b bool
	s string
	v [3]float32
}

// FloatValue wraps a float64.
func FloatValue(v float64) ParamValue { return ParamValue{Kind: ParamFloat, f: v} }

// IntValue wraps an int64.
func IntValue(v int64) ParamValue { return ParamValue{Kind: ParamInt, i: v} }

// BoolValue wraps a bool.
func BoolValue(v bool) ParamValue { return ParamValue{Kind: ParamBool, b: v} }

// StringValue wraps a string.
func StringValue(v string) ParamValue { return ParamValue{Kind: ParamString, s: v} }

// Vec2Value wraps a 2-component vector.
func Vec2Value(x, y float32) ParamValue {
	return ParamValue{Kind: ParamVec2, v: [3]float32{x, y, 0}}
}

// Vec3Value wraps a 3-component vector.
func Vec3Value(x, y, z float32) ParamValue {
	return ParamValue{Kind: ParamVec3, v: [3]float32{x, y, z}}
}

// Float returns the float64 payload, or 0 for other kinds.
func (p ParamValue) Float() float64 {
	if p.Kind == ParamInt {
		return float64(p.i)
	}
	return p.f
}

// Int returns the int64 payload, or 0 for other kinds.
func (p ParamValue) Int() int64 { return p.i }

// Bool returns the bool payload, or false for other kinds.
func (p ParamValue) Bool() bool { return p.b }

// Str returns the string payload, or "" for other kinds.
func (p ParamValue) Str() string { return p.s }

// Vec2 returns the vector payload truncated to two components.
func (p ParamValue) Vec2() [2]float32 { return [2]float32{p.v[0], p.v[1]} }

// Vec3 returns the vector payload.
func (p ParamValue) Vec3() [3]float32 { return p.v }

// MarshalYAML encodes scalars as YAML scalars and vectors as flow sequences,
// so parameter blocks in plan files read the way a user would write them.
func (p ParamValue) MarshalYAML() (any, error) {
	switch p.Kind {
	case ParamFloat:
		return p.f, nil
	case ParamInt:
		return p.i, nil
	case ParamBool:
		return p.b, nil
	case ParamString:
		return p.s, nil
	case ParamVec2:
		return []float32{p.v[0], p.v[1]}, nil
	case ParamVec3:
		return []float32{p.v[0], p.v[1], p.v[2]}, nil
	default:
		return nil, zerr.New("cannot marshal empty param value")
	}
}

// UnmarshalYAML infers the param kind from the YAML node shape: a sequence of
// two or three numbers becomes a vector, scalars map by YAML tag.
func (p *ParamValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var vals []float32
		if err := node.Decode(&vals); err != nil {
			return zerr.Wrap(err, "failed to decode vector param")
		}
		switch len(vals) {
		case 2:
			*p = Vec2Value(vals[0], vals[1])
		case 3:
			*p = Vec3Value(vals[0], vals[1], vals[2])
		default:
			return zerr.With(zerr.New("vector param must have 2 or 3 components"), "components", len(vals))
		}
		return nil
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int":
			var v int64
			if err := node.Decode(&v); err != nil {
				return zerr.Wrap(err, "failed to decode int param")
			}
			*p = IntValue(v)
		case "!!float":
			var v float64
			if err := node.Decode(&v); err != nil {
				return zerr.Wrap(err, "failed to decode float param")
			}
			*p = FloatValue(v)
		case "!!bool":
			var v bool
			if err := node.Decode(&v); err != nil {
				return zerr.Wrap(err, "failed to decode bool param")
			}
			*p = BoolValue(v)
		default:
			var v string
			if err := node.Decode(&v); err != nil {
				return zerr.Wrap(err, "failed to decode string param")
			}
			*p = StringValue(v)
		}
		return nil
	default:
		return zerr.New(fmt.Sprintf("unsupported YAML node kind %d for param value", node.Kind))
	}
}

// Params is a node's parameter block. Mutation goes through Graph.SetParam so
// the owning node's param version is bumped; the map itself is plain data.
type Params map[string]ParamValue

// Clone returns a shallow copy. ParamValue is a value type, so a shallow copy
// is a full copy.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// FloatOr returns the named float parameter, or def when absent or of a
// different kind. Int parameters widen to float.
func (p Params) FloatOr(key string, def float64) float64 {
	v, ok := p[key]
	if !ok || (v.Kind != ParamFloat && v.Kind != ParamInt) {
		return def
	}
	return v.Float()
}

// IntOr returns the named int parameter, or def.
func (p Params) IntOr(key string, def int64) int64 {
	v, ok := p[key]
	if !ok || v.Kind != ParamInt {
		return def
	}
	return v.i
}

// BoolOr returns the named bool parameter, or def.
func (p Params) BoolOr(key string, def bool) bool {
	v, ok := p[key]
	if !ok || v.Kind != ParamBool {
		return def
	}
	return v.b
}

// Vec2Or returns the named vec2 parameter, or def.
func (p Params) Vec2Or(key string, def [2]float32) [2]float32 {
	v, ok := p[key]
	if !ok || v.Kind != ParamVec2 {
		return def
	}
	return v.Vec2()
}

// Vec3Or returns the named vec3 parameter, or def.
func (p Params) Vec3Or(key string, def [3]float32) [3]float32 {
	v, ok := p[key]
	if !ok || v.Kind != ParamVec3 {
		return def
	}
	return v.v
}

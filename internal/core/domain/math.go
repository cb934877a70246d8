package domain

import "math"

// Vec3 is a 3-component float vector. The geometry kernel only needs a small
// fixed set of operations, kept here next to the mesh type.
type Vec3 [3]float32

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Length returns the Euclidean length.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// Normalized returns the unit vector, or the +Y axis for a degenerate input
// so normals always stay renderable.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l <= 0 {
		return Vec3{0, 1, 0}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Mat3 is a row-major 3x3 matrix, used for rotations and normal transforms.
type Mat3 [3][3]float32

// Mul returns m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Apply returns m * v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func rotationX(rad float32) Mat3 {
	s, c := sincos(rad)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

func rotationY(rad float32) Mat3 {
	s, c := sincos(rad)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

func rotationZ(rad float32) Mat3 {
	s, c := sincos(rad)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

func sincos(rad float32) (sin, cos float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}

// EulerXYZ builds a rotation from per-axis angles in degrees, applied in
// X, then Y, then Z order.
func EulerXYZ(deg Vec3) Mat3 {
	const degToRad = math.Pi / 180
	rx := rotationX(deg[0] * degToRad)
	ry := rotationY(deg[1] * degToRad)
	rz := rotationZ(deg[2] * degToRad)
	return rx.Mul(ry).Mul(rz)
}

// Mat4 is a row-major 4x4 affine transform.
type Mat4 struct {
	Basis       Mat3
	Translation Vec3
}

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{Basis: Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// ComposeSRT builds scale, then rotation (Euler XYZ degrees), then
// translation.
func ComposeSRT(scale, rotateDeg, translate Vec3) Mat4 {
	r := EulerXYZ(rotateDeg)
	var basis Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			basis[i][j] = r[i][j] * scale[j]
		}
	}
	return Mat4{Basis: basis, Translation: translate}
}

// TransformPoint applies the full affine transform to a point.
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	return m.Basis.Apply(v).Add(m.Translation)
}

// NormalMatrix returns the inverse-transpose of the basis, the matrix that
// keeps normals perpendicular under non-uniform scale. Returns false for a
// singular basis.
func (m Mat4) NormalMatrix() (Mat3, bool) {
	a := m.Basis
	// Cofactor matrix of a is (a^-1)^T scaled by det(a).
	var cof Mat3
	cof[0][0] = a[1][1]*a[2][2] - a[1][2]*a[2][1]
	cof[0][1] = a[1][2]*a[2][0] - a[1][0]*a[2][2]
	cof[0][2] = a[1][0]*a[2][1] - a[1][1]*a[2][0]
	cof[1][0] = a[0][2]*a[2][1] - a[0][1]*a[2][2]
	cof[1][1] = a[0][0]*a[2][2] - a[0][2]*a[2][0]
	cof[1][2] = a[0][1]*a[2][0] - a[0][0]*a[2][1]
	cof[2][0] = a[0][1]*a[1][2] - a[0][2]*a[1][1]
	cof[2][1] = a[0][2]*a[1][0] - a[0][0]*a[1][2]
	cof[2][2] = a[0][0]*a[1][1] - a[0][1]*a[1][0]

	det := a[0][0]*cof[0][0] + a[0][1]*cof[0][1] + a[0][2]*cof[0][2]
	if det == 0 {
		return Mat3{}, false
	}
	inv := 1 / det
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cof[i][j] *= inv
		}
	}
	return cof, true
}

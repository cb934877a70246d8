package domain

// Aabb is an axis-aligned bounding box.
type Aabb struct {
	Min Vec3
	Max Vec3
}

// Mesh is indexed triangle geometry. Normals and UVs are optional; a nil
// slice means the attribute is absent. Meshes flowing between nodes are
// treated as immutable: operators clone before mutating.
type Mesh struct {
	Positions []Vec3
	Indices   []uint32
	Normals   []Vec3
	UVs       [][2]float32
}

// NewMesh creates a mesh from positions and indices with no attributes.
func NewMesh(positions []Vec3, indices []uint32) *Mesh {
	return &Mesh{Positions: positions, Indices: indices}
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Positions: make([]Vec3, len(m.Positions)),
		Indices:   make([]uint32, len(m.Indices)),
	}
	copy(out.Positions, m.Positions)
	copy(out.Indices, m.Indices)
	if m.Normals != nil {
		out.Normals = make([]Vec3, len(m.Normals))
		copy(out.Normals, m.Normals)
	}
	if m.UVs != nil {
		out.UVs = make([][2]float32, len(m.UVs))
		copy(out.UVs, m.UVs)
	}
	return out
}

// TriangleCount returns the number of whole triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box, or false for an empty mesh.
func (m *Mesh) Bounds() (Aabb, bool) {
	if len(m.Positions) == 0 {
		return Aabb{}, false
	}
	b := Aabb{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < b.Min[i] {
				b.Min[i] = p[i]
			}
			if p[i] > b.Max[i] {
				b.Max[i] = p[i]
			}
		}
	}
	return b, true
}

// ComputeNormals derives per-vertex normals by accumulating area-weighted
// face normals. It reports false when the index buffer is not a whole number
// of triangles or the mesh has no positions.
func (m *Mesh) ComputeNormals() bool {
	if len(m.Indices)%3 != 0 || len(m.Positions) == 0 {
		return false
	}

	accum := make([]Vec3, len(m.Positions))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := int(m.Indices[t]), int(m.Indices[t+1]), int(m.Indices[t+2])
		if i0 >= len(m.Positions) || i1 >= len(m.Positions) || i2 >= len(m.Positions) {
			continue
		}
		p0, p1, p2 := m.Positions[i0], m.Positions[i1], m.Positions[i2]
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}

	normals := make([]Vec3, len(accum))
	for i, n := range accum {
		normals[i] = n.Normalized()
	}
	m.Normals = normals
	return true
}

// Transform applies an affine transform in place. Normals use the
// inverse-transpose basis and are renormalised; a singular basis leaves them
// pointing up rather than producing NaNs.
func (m *Mesh) Transform(mat Mat4) {
	for i, p := range m.Positions {
		m.Positions[i] = mat.TransformPoint(p)
	}
	if m.Normals == nil {
		return
	}
	nm, ok := mat.NormalMatrix()
	if !ok {
		for i := range m.Normals {
			m.Normals[i] = Vec3{0, 1, 0}
		}
		return
	}
	for i, n := range m.Normals {
		m.Normals[i] = nm.Apply(n).Normalized()
	}
}

// MergeMeshes concatenates meshes into one, offsetting indices. Optional
// attributes survive only when every input carries them.
func MergeMeshes(meshes []*Mesh) *Mesh {
	merged := &Mesh{}
	includeNormals := len(meshes) > 0
	includeUVs := len(meshes) > 0
	for _, m := range meshes {
		includeNormals = includeNormals && m.Normals != nil
		includeUVs = includeUVs && m.UVs != nil
	}

	var offset uint32
	for _, m := range meshes {
		merged.Positions = append(merged.Positions, m.Positions...)
		for _, idx := range m.Indices {
			merged.Indices = append(merged.Indices, idx+offset)
		}
		offset += uint32(len(m.Positions))
	}
	if includeNormals {
		for _, m := range meshes {
			merged.Normals = append(merged.Normals, m.Normals...)
		}
	}
	if includeUVs {
		for _, m := range meshes {
			merged.UVs = append(merged.UVs, m.UVs...)
		}
	}
	return merged
}

// MakeBox builds an axis-aligned box centered at the origin with the given
// edge lengths: 8 vertices, 12 triangles.
func MakeBox(size Vec3) *Mesh {
	hx, hy, hz := size[0]*0.5, size[1]*0.5, size[2]*0.5

	positions := []Vec3{
		{-hx, -hy, -hz},
		{hx, -hy, -hz},
		{hx, hy, -hz},
		{-hx, hy, -hz},
		{-hx, -hy, hz},
		{hx, -hy, hz},
		{hx, hy, hz},
		{-hx, hy, hz},
	}

	indices := []uint32{
		0, 2, 1, 0, 3, 2, // -Z
		4, 5, 6, 4, 6, 7, // +Z
		0, 1, 5, 0, 5, 4, // -Y
		2, 3, 7, 2, 7, 6, // +Y
		1, 2, 6, 1, 6, 5, // +X
		3, 0, 4, 3, 4, 7, // -X
	}

	return NewMesh(positions, indices)
}

// MakeGrid builds a flat XZ-plane grid centered at the origin. Divisions are
// clamped to at least 1 per axis.
func MakeGrid(size [2]float32, divisions [2]int) *Mesh {
	width := max(size[0], 0)
	depth := max(size[1], 0)
	divX := max(divisions[0], 1)
	divZ := max(divisions[1], 1)

	stepX := width / float32(divX)
	stepZ := depth / float32(divZ)
	originX := -width * 0.5
	originZ := -depth * 0.5

	positions := make([]Vec3, 0, (divX+1)*(divZ+1))
	for z := 0; z <= divZ; z++ {
		for x := 0; x <= divX; x++ {
			positions = append(positions, Vec3{
				originX + float32(x)*stepX,
				0,
				originZ + float32(z)*stepZ,
			})
		}
	}

	indices := make([]uint32, 0, divX*divZ*6)
	stride := uint32(divX + 1)
	for z := 0; z < divZ; z++ {
		for x := 0; x < divX; x++ {
			i0 := uint32(z)*stride + uint32(x)
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1
			indices = append(indices, i0, i2, i1, i1, i2, i3)
		}
	}

	return NewMesh(positions, indices)
}

package domain

// SceneMesh is the renderer-facing mesh payload: positions, indices, and
// normals that are always present (computed on demand when the source mesh
// has none).
type SceneMesh struct {
	Positions []Vec3
	Normals   []Vec3
	Indices   []uint32
}

// SceneSnapshot is the detached output of one evaluation run. It holds deep
// copies only, so a renderer consuming it can never observe or corrupt graph
// or cache state.
type SceneSnapshot struct {
	Mesh      SceneMesh
	BaseColor [3]float32
}

// SceneMeshFromMesh deep-copies a mesh into a scene mesh, deriving normals
// when the source has none.
func SceneMeshFromMesh(m *Mesh) SceneMesh {
	normals := m.Normals
	if normals == nil {
		tmp := m.Clone()
		if tmp.ComputeNormals() {
			normals = tmp.Normals
		} else {
			normals = make([]Vec3, len(m.Positions))
			for i := range normals {
				normals[i] = Vec3{0, 1, 0}
			}
		}
	}

	out := SceneMesh{
		Positions: make([]Vec3, len(m.Positions)),
		Normals:   make([]Vec3, len(normals)),
		Indices:   make([]uint32, len(m.Indices)),
	}
	copy(out.Positions, m.Positions)
	copy(out.Normals, normals)
	copy(out.Indices, m.Indices)
	return out
}

// SnapshotFromMesh wraps a mesh and base color into a snapshot.
func SnapshotFromMesh(m *Mesh, baseColor [3]float32) *SceneSnapshot {
	return &SceneSnapshot{
		Mesh:      SceneMeshFromMesh(m),
		BaseColor: baseColor,
	}
}

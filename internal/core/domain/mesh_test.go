package domain_test

import (
	"math"
	"testing"

	"github.com/eetumartola/grapho/internal/core/domain"
)

func approxVec3(t *testing.T, want, got domain.Vec3, eps float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(float64(want[i]-got[i])) > eps {
			t.Fatalf("component %d: want %v, got %v", i, want, got)
		}
	}
}

func TestMakeBox(t *testing.T) {
	m := domain.MakeBox(domain.Vec3{2, 4, 6})

	if len(m.Positions) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(m.Positions))
	}
	if m.TriangleCount() != 12 {
		t.Fatalf("expected 12 triangles, got %d", m.TriangleCount())
	}

	b, ok := m.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	approxVec3(t, domain.Vec3{-1, -2, -3}, b.Min, 1e-6)
	approxVec3(t, domain.Vec3{1, 2, 3}, b.Max, 1e-6)
}

func TestMakeGrid(t *testing.T) {
	m := domain.MakeGrid([2]float32{4, 2}, [2]int{4, 2})

	if len(m.Positions) != 5*3 {
		t.Fatalf("expected 15 vertices, got %d", len(m.Positions))
	}
	if m.TriangleCount() != 2*4*2 {
		t.Fatalf("expected 16 triangles, got %d", m.TriangleCount())
	}

	b, _ := m.Bounds()
	approxVec3(t, domain.Vec3{-2, 0, -1}, b.Min, 1e-6)
	approxVec3(t, domain.Vec3{2, 0, 1}, b.Max, 1e-6)
}

func TestMakeGrid_ClampsDivisions(t *testing.T) {
	m := domain.MakeGrid([2]float32{1, 1}, [2]int{0, -3})
	if m.TriangleCount() != 2 {
		t.Errorf("expected a single quad after clamping, got %d triangles", m.TriangleCount())
	}
}

func TestComputeNormals_FlatTriangle(t *testing.T) {
	m := domain.NewMesh(
		[]domain.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, -1}},
		[]uint32{0, 1, 2},
	)

	if !m.ComputeNormals() {
		t.Fatal("expected normals to be computed")
	}
	for i := range m.Normals {
		approxVec3(t, domain.Vec3{0, 1, 0}, m.Normals[i], 1e-5)
	}
}

func TestComputeNormals_RejectsRaggedIndices(t *testing.T) {
	m := domain.NewMesh([]domain.Vec3{{0, 0, 0}}, []uint32{0, 0})
	if m.ComputeNormals() {
		t.Error("expected failure on partial triangle")
	}
}

func TestTransform_TranslateAndBounds(t *testing.T) {
	m := domain.MakeBox(domain.Vec3{1, 1, 1})
	m.Transform(domain.ComposeSRT(
		domain.Vec3{1, 1, 1},
		domain.Vec3{0, 0, 0},
		domain.Vec3{0, 1, 0},
	))

	b, _ := m.Bounds()
	approxVec3(t, domain.Vec3{-0.5, 0.5, -0.5}, b.Min, 1e-6)
	approxVec3(t, domain.Vec3{0.5, 1.5, 0.5}, b.Max, 1e-6)
}

func TestTransform_NonUniformScaleNormals(t *testing.T) {
	// A ground-plane triangle keeps pointing up under non-uniform scale only
	// when normals go through the inverse-transpose.
	m := domain.NewMesh(
		[]domain.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, -1}},
		[]uint32{0, 1, 2},
	)
	m.ComputeNormals()

	m.Transform(domain.ComposeSRT(
		domain.Vec3{3, 1, 0.25},
		domain.Vec3{0, 0, 0},
		domain.Vec3{0, 0, 0},
	))

	for i := range m.Normals {
		approxVec3(t, domain.Vec3{0, 1, 0}, m.Normals[i], 1e-5)
	}
}

func TestTransform_Rotation(t *testing.T) {
	m := domain.NewMesh([]domain.Vec3{{1, 0, 0}}, nil)
	m.Transform(domain.ComposeSRT(
		domain.Vec3{1, 1, 1},
		domain.Vec3{0, 90, 0},
		domain.Vec3{0, 0, 0},
	))
	approxVec3(t, domain.Vec3{0, 0, -1}, m.Positions[0], 1e-5)
}

func TestTransform_SingularBasisKeepsNormalsFinite(t *testing.T) {
	m := domain.NewMesh(
		[]domain.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, -1}},
		[]uint32{0, 1, 2},
	)
	m.ComputeNormals()

	m.Transform(domain.ComposeSRT(
		domain.Vec3{1, 0, 1},
		domain.Vec3{0, 0, 0},
		domain.Vec3{0, 0, 0},
	))

	for _, n := range m.Normals {
		approxVec3(t, domain.Vec3{0, 1, 0}, n, 1e-6)
	}
}

func TestMergeMeshes_OffsetsIndices(t *testing.T) {
	a := domain.MakeBox(domain.Vec3{1, 1, 1})
	b := domain.MakeBox(domain.Vec3{2, 2, 2})

	merged := domain.MergeMeshes([]*domain.Mesh{a, b})

	if len(merged.Positions) != 16 {
		t.Fatalf("expected 16 vertices, got %d", len(merged.Positions))
	}
	if merged.TriangleCount() != 24 {
		t.Fatalf("expected 24 triangles, got %d", merged.TriangleCount())
	}

	// Indices of the second mesh must refer past the first mesh's vertices.
	for _, idx := range merged.Indices[len(a.Indices):] {
		if idx < 8 || idx >= 16 {
			t.Fatalf("unexpected index %d in second mesh range", idx)
		}
	}
}

func TestMergeMeshes_AttributesNeedAllInputs(t *testing.T) {
	withNormals := domain.MakeBox(domain.Vec3{1, 1, 1})
	withNormals.ComputeNormals()
	bare := domain.MakeBox(domain.Vec3{1, 1, 1})

	merged := domain.MergeMeshes([]*domain.Mesh{withNormals, bare})
	if merged.Normals != nil {
		t.Error("normals must be dropped when any input lacks them")
	}

	bare.ComputeNormals()
	merged = domain.MergeMeshes([]*domain.Mesh{withNormals, bare})
	if len(merged.Normals) != 16 {
		t.Errorf("expected merged normals for all 16 vertices, got %d", len(merged.Normals))
	}
}

func TestClone_IsDeep(t *testing.T) {
	m := domain.MakeBox(domain.Vec3{1, 1, 1})
	m.ComputeNormals()

	c := m.Clone()
	c.Positions[0] = domain.Vec3{99, 99, 99}
	c.Normals[0] = domain.Vec3{9, 9, 9}

	if m.Positions[0] == c.Positions[0] {
		t.Error("clone shares position storage")
	}
	if m.Normals[0] == c.Normals[0] {
		t.Error("clone shares normal storage")
	}
}

package nodes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eetumartola/grapho/internal/adapters/nodes"
	"github.com/eetumartola/grapho/internal/core/domain"
)

func TestRegistry_BuiltinsRegistered(t *testing.T) {
	r := nodes.NewRegistry()

	require.Equal(t, []string{"Box", "Grid", "Merge", "Output", "Transform"}, r.Types())

	box, ok := r.Lookup("Box")
	require.True(t, ok)
	require.Equal(t, "Box", box.Name)
	require.Len(t, box.Outputs, 1)
	require.Equal(t, domain.PinTypeMesh, box.Outputs[0].Type)

	_, ok = r.Lookup("Sphere")
	require.False(t, ok)
}

func TestRegistry_RejectsDuplicate(t *testing.T) {
	r := nodes.NewRegistry()

	err := r.Register(&domain.NodeType{Name: "Box"})
	require.Error(t, err)

	err = r.Register(&domain.NodeType{Name: "Sphere"})
	require.NoError(t, err)
	_, ok := r.Lookup("Sphere")
	require.True(t, ok)
}

func TestBox_Compute(t *testing.T) {
	box := nodes.Box()

	out, err := box.Compute(context.Background(), nil, domain.Params{
		"size": domain.Vec3Value(2, 4, 6),
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	m := out[0].Mesh
	require.Len(t, m.Positions, 8)
	require.Equal(t, 12, m.TriangleCount())

	bounds, ok := m.Bounds()
	require.True(t, ok)
	require.InDelta(t, -1, bounds.Min[0], 1e-6)
	require.InDelta(t, 2, bounds.Max[1], 1e-6)
	require.InDelta(t, 3, bounds.Max[2], 1e-6)
}

func TestBox_NegativeSizeRejected(t *testing.T) {
	box := nodes.Box()

	_, err := box.Compute(context.Background(), nil, domain.Params{
		"size": domain.Vec3Value(1, -1, 1),
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestGrid_Compute(t *testing.T) {
	grid := nodes.Grid()

	out, err := grid.Compute(context.Background(), nil, domain.Params{
		"size":      domain.Vec2Value(4, 4),
		"divisions": domain.Vec2Value(2, 3),
	})
	require.NoError(t, err)

	m := out[0].Mesh
	require.Len(t, m.Positions, 3*4)
	require.Equal(t, 2*2*3, m.TriangleCount())
}

func TestGrid_DivisionGuardrail(t *testing.T) {
	grid := nodes.Grid()

	_, err := grid.Compute(context.Background(), nil, domain.Params{
		"divisions": domain.Vec2Value(5000, 1),
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestTransform_DoesNotMutateInput(t *testing.T) {
	tr := nodes.Transform()
	in := domain.MakeBox(domain.Vec3{1, 1, 1})

	out, err := tr.Compute(context.Background(),
		[]domain.Value{domain.MeshValue(in)},
		domain.Params{"translate": domain.Vec3Value(0, 10, 0)},
	)
	require.NoError(t, err)

	moved := out[0].Mesh
	require.NotSame(t, in, moved)
	require.InDelta(t, -0.5, in.Positions[0][1], 1e-6)
	require.InDelta(t, 9.5, moved.Positions[0][1], 1e-6)
}

func TestMerge_OptionalSecondInput(t *testing.T) {
	merge := nodes.Merge()
	a := domain.MakeBox(domain.Vec3{1, 1, 1})

	out, err := merge.Compute(context.Background(),
		[]domain.Value{domain.MeshValue(a), {}},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, out[0].Mesh.Positions, 8)

	b := domain.MakeBox(domain.Vec3{2, 2, 2})
	out, err = merge.Compute(context.Background(),
		[]domain.Value{domain.MeshValue(a), domain.MeshValue(b)},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, out[0].Mesh.Positions, 16)
	require.Equal(t, 24, out[0].Mesh.TriangleCount())
}

func TestOutput_PassThrough(t *testing.T) {
	sink := nodes.Output()
	in := domain.MeshValue(domain.MakeGrid([2]float32{1, 1}, [2]int{1, 1}))

	out, err := sink.Compute(context.Background(), []domain.Value{in}, nil)
	require.NoError(t, err)
	require.Same(t, in.Mesh, out[0].Mesh)
}

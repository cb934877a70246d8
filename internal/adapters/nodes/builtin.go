// Package nodes holds the built-in node type catalogue: the geometry
// generators and operators a fresh registry ships with.
package nodes

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/eetumartola/grapho/internal/core/domain"
)

const maxGridDivisions = 4096

// Box emits an axis-aligned box mesh centred on the origin.
func Box() *domain.NodeType {
	return &domain.NodeType{
		Name:     "Box",
		Category: "generate",
		Outputs: []domain.PinDef{
			{Name: "out", Type: domain.PinTypeMesh},
		},
		DefaultParams: domain.Params{
			"size": domain.Vec3Value(1, 1, 1),
		},
		Compute: func(ctx context.Context, inputs []domain.Value, params domain.Params) ([]domain.Value, error) {
			size := params.Vec3Or("size", [3]float32{1, 1, 1})
			for i, v := range size {
				if v < 0 {
					err := zerr.With(domain.ErrInvalidParameter, "param", "size")
					return nil, zerr.With(err, "component", i)
				}
			}
			return []domain.Value{domain.MeshValue(domain.MakeBox(size))}, nil
		},
	}
}

// Grid emits a subdivided plane in the XZ plane.
func Grid() *domain.NodeType {
	return &domain.NodeType{
		Name:     "Grid",
		Category: "generate",
		Outputs: []domain.PinDef{
			{Name: "out", Type: domain.PinTypeMesh},
		},
		DefaultParams: domain.Params{
			"size":      domain.Vec2Value(2, 2),
			"divisions": domain.Vec2Value(10, 10),
		},
		Compute: func(ctx context.Context, inputs []domain.Value, params domain.Params) ([]domain.Value, error) {
			size := params.Vec2Or("size", [2]float32{2, 2})
			div := params.Vec2Or("divisions", [2]float32{10, 10})
			divisions := [2]int{int(div[0]), int(div[1])}
			for axis, d := range divisions {
				if d > maxGridDivisions {
					err := zerr.With(domain.ErrInvalidParameter, "param", "divisions")
					err = zerr.With(err, "axis", axis)
					return nil, zerr.With(err, "max", maxGridDivisions)
				}
			}
			return []domain.Value{domain.MeshValue(domain.MakeGrid(size, divisions))}, nil
		},
	}
}

// Transform applies a scale/rotate/translate matrix to the input mesh.
// Rotation is XYZ Euler in degrees.
func Transform() *domain.NodeType {
	return &domain.NodeType{
		Name:     "Transform",
		Category: "modify",
		Inputs: []domain.PinDef{
			{Name: "in", Type: domain.PinTypeMesh},
		},
		Outputs: []domain.PinDef{
			{Name: "out", Type: domain.PinTypeMesh},
		},
		DefaultParams: domain.Params{
			"translate":  domain.Vec3Value(0, 0, 0),
			"rotate_deg": domain.Vec3Value(0, 0, 0),
			"scale":      domain.Vec3Value(1, 1, 1),
		},
		Compute: func(ctx context.Context, inputs []domain.Value, params domain.Params) ([]domain.Value, error) {
			mat := domain.ComposeSRT(
				params.Vec3Or("scale", [3]float32{1, 1, 1}),
				params.Vec3Or("rotate_deg", [3]float32{0, 0, 0}),
				params.Vec3Or("translate", [3]float32{0, 0, 0}),
			)
			out := inputs[0].Mesh.Clone()
			out.Transform(mat)
			return []domain.Value{domain.MeshValue(out)}, nil
		},
	}
}

// Merge concatenates up to two meshes into one. The second input is optional
// so a single branch can pass through unchanged.
func Merge() *domain.NodeType {
	return &domain.NodeType{
		Name:     "Merge",
		Category: "combine",
		Inputs: []domain.PinDef{
			{Name: "a", Type: domain.PinTypeMesh},
			{Name: "b", Type: domain.PinTypeMesh, Optional: true},
		},
		Outputs: []domain.PinDef{
			{Name: "out", Type: domain.PinTypeMesh},
		},
		Compute: func(ctx context.Context, inputs []domain.Value, params domain.Params) ([]domain.Value, error) {
			parts := []*domain.Mesh{inputs[0].Mesh}
			if !inputs[1].Absent() {
				parts = append(parts, inputs[1].Mesh)
			}
			return []domain.Value{domain.MeshValue(domain.MergeMeshes(parts))}, nil
		},
	}
}

// Output is the designated sink of a graph. It passes its input through so
// the snapshot step can read the finished mesh off its output pin.
func Output() *domain.NodeType {
	return &domain.NodeType{
		Name:     "Output",
		Category: "output",
		Inputs: []domain.PinDef{
			{Name: "in", Type: domain.PinTypeMesh},
		},
		Outputs: []domain.PinDef{
			{Name: "out", Type: domain.PinTypeMesh},
		},
		Compute: func(ctx context.Context, inputs []domain.Value, params domain.Params) ([]domain.Value, error) {
			return []domain.Value{inputs[0]}, nil
		},
	}
}

// Builtins returns one fresh instance of every built-in node type.
func Builtins() []*domain.NodeType {
	return []*domain.NodeType{
		Box(),
		Grid(),
		Transform(),
		Merge(),
		Output(),
	}
}

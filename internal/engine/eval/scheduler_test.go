package eval_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eetumartola/grapho/internal/core/domain"
	"github.com/eetumartola/grapho/internal/engine/eval"
)

func sourceType() *domain.NodeType {
	return &domain.NodeType{
		Name:    "source",
		Outputs: []domain.PinDef{{Name: "out", Type: domain.PinTypeMesh}},
	}
}

func filterType() *domain.NodeType {
	return &domain.NodeType{
		Name:    "filter",
		Inputs:  []domain.PinDef{{Name: "in", Type: domain.PinTypeMesh}},
		Outputs: []domain.PinDef{{Name: "out", Type: domain.PinTypeMesh}},
	}
}

func combineType() *domain.NodeType {
	return &domain.NodeType{
		Name: "combine",
		Inputs: []domain.PinDef{
			{Name: "a", Type: domain.PinTypeMesh},
			{Name: "b", Type: domain.PinTypeMesh, Optional: true},
		},
		Outputs: []domain.PinDef{{Name: "out", Type: domain.PinTypeMesh}},
	}
}

func connect(t *testing.T, g *domain.Graph, src domain.NodeID, srcPin int, dst domain.NodeID, dstPin int) {
	t.Helper()
	err := g.Connect(
		domain.PinAddr{Node: src, Pin: srcPin},
		domain.PinAddr{Node: dst, Pin: dstPin},
	)
	require.NoError(t, err)
}

func TestTopoOrder_Diamond(t *testing.T) {
	g := domain.NewGraph()
	src := g.AddNode(sourceType(), "src")
	left := g.AddNode(filterType(), "left")
	right := g.AddNode(filterType(), "right")
	sink := g.AddNode(combineType(), "sink")

	connect(t, g, src, 0, left, 0)
	connect(t, g, src, 0, right, 0)
	connect(t, g, left, 0, sink, 0)
	connect(t, g, right, 0, sink, 1)

	order, err := eval.TopoOrder(g, sink)
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[domain.NodeID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	require.Less(t, pos[src], pos[left])
	require.Less(t, pos[src], pos[right])
	require.Less(t, pos[left], pos[sink])
	require.Less(t, pos[right], pos[sink])
}

func TestTopoOrder_ExcludesUnreachable(t *testing.T) {
	g := domain.NewGraph()
	src := g.AddNode(sourceType(), "src")
	sink := g.AddNode(filterType(), "sink")
	stray := g.AddNode(sourceType(), "stray")

	connect(t, g, src, 0, sink, 0)

	order, err := eval.TopoOrder(g, sink)
	require.NoError(t, err)
	require.Len(t, order, 2)
	for _, id := range order {
		require.NotEqual(t, stray, id)
	}
}

func TestTopoOrder_CycleDetected(t *testing.T) {
	g := domain.NewGraph()
	a := g.AddNode(filterType(), "a")
	b := g.AddNode(filterType(), "b")

	connect(t, g, a, 0, b, 0)
	connect(t, g, b, 0, a, 0)

	order, err := eval.TopoOrder(g, b)
	require.Nil(t, order)
	require.True(t, errors.Is(err, domain.ErrCycleDetected))

	cycle := eval.CycleNodes(err)
	require.ElementsMatch(t, []string{a.String(), b.String()}, cycle)
}

func TestTopoOrder_SingleNode(t *testing.T) {
	g := domain.NewGraph()
	src := g.AddNode(sourceType(), "src")

	order, err := eval.TopoOrder(g, src)
	require.NoError(t, err)
	require.Equal(t, []domain.NodeID{src}, order)
}

func TestTopoOrder_UnknownRoot(t *testing.T) {
	g := domain.NewGraph()

	_, err := eval.TopoOrder(g, domain.NodeID{Index: 7, Gen: 1})
	require.True(t, errors.Is(err, domain.ErrUnknownNode))
}

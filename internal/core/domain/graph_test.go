package domain_test

import (
	"errors"
	"testing"

	"github.com/eetumartola/grapho/internal/core/domain"
)

func meshSourceType() *domain.NodeType {
	return &domain.NodeType{
		Name: "source",
		Outputs: []domain.PinDef{
			{Name: "out", Type: domain.PinTypeMesh},
		},
		DefaultParams: domain.Params{
			"size": domain.Vec3Value(1, 1, 1),
		},
	}
}

func meshFilterType() *domain.NodeType {
	return &domain.NodeType{
		Name: "filter",
		Inputs: []domain.PinDef{
			{Name: "in", Type: domain.PinTypeMesh},
		},
		Outputs: []domain.PinDef{
			{Name: "out", Type: domain.PinTypeMesh},
		},
	}
}

func scalarSinkType() *domain.NodeType {
	return &domain.NodeType{
		Name: "scalar_sink",
		Inputs: []domain.PinDef{
			{Name: "value", Type: domain.PinTypeFloat},
		},
	}
}

func TestGraph_AddAndLookup(t *testing.T) {
	g := domain.NewGraph()

	id := g.AddNode(meshSourceType(), "box1")
	if g.NodeCount() != 1 {
		t.Fatalf("expected 1 node, got %d", g.NodeCount())
	}

	n, ok := g.Node(id)
	if !ok {
		t.Fatal("expected node to resolve")
	}
	if n.Label != "box1" {
		t.Errorf("expected label box1, got %q", n.Label)
	}
	if _, ok := n.Param("size"); !ok {
		t.Error("expected default params to be cloned onto the node")
	}
}

func TestGraph_DefaultParamsAreNotShared(t *testing.T) {
	g := domain.NewGraph()
	typ := meshSourceType()

	a := g.AddNode(typ, "a")
	b := g.AddNode(typ, "b")

	if err := g.SetParam(a, "size", domain.Vec3Value(9, 9, 9)); err != nil {
		t.Fatal(err)
	}

	nb, _ := g.Node(b)
	if got := nb.Params().Vec3Or("size", [3]float32{}); got != [3]float32{1, 1, 1} {
		t.Errorf("editing one node leaked into its sibling: %v", got)
	}
}

func TestGraph_StaleIDAfterSlotReuse(t *testing.T) {
	g := domain.NewGraph()

	old := g.AddNode(meshSourceType(), "old")
	if err := g.RemoveNode(old); err != nil {
		t.Fatal(err)
	}

	fresh := g.AddNode(meshSourceType(), "fresh")
	if fresh.Index != old.Index {
		t.Fatalf("expected slot reuse, got index %d vs %d", fresh.Index, old.Index)
	}
	if fresh.Gen == old.Gen {
		t.Fatal("expected a new generation on slot reuse")
	}

	if _, ok := g.Node(old); ok {
		t.Error("stale id must not resolve")
	}
	if _, ok := g.Node(fresh); !ok {
		t.Error("fresh id must resolve")
	}

	if err := g.SetParam(old, "size", domain.Vec3Value(2, 2, 2)); !errors.Is(err, domain.ErrUnknownNode) {
		t.Errorf("expected ErrUnknownNode for stale id, got %v", err)
	}
}

func TestGraph_ConnectTypeMismatchLeavesGraphUnchanged(t *testing.T) {
	g := domain.NewGraph()
	src := g.AddNode(meshSourceType(), "src")
	sink := g.AddNode(scalarSinkType(), "sink")

	before := g.TopologyVersion()
	err := g.Connect(
		domain.PinAddr{Node: src, Pin: 0},
		domain.PinAddr{Node: sink, Pin: 0},
	)
	if !errors.Is(err, domain.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if g.LinkCount() != 0 {
		t.Error("failed connect must not leave a link behind")
	}
	if g.TopologyVersion() != before {
		t.Error("failed connect must not bump the topology version")
	}
}

func TestGraph_ConnectOccupiedInput(t *testing.T) {
	g := domain.NewGraph()
	a := g.AddNode(meshSourceType(), "a")
	b := g.AddNode(meshSourceType(), "b")
	f := g.AddNode(meshFilterType(), "f")

	in := domain.PinAddr{Node: f, Pin: 0}
	if err := g.Connect(domain.PinAddr{Node: a, Pin: 0}, in); err != nil {
		t.Fatal(err)
	}
	err := g.Connect(domain.PinAddr{Node: b, Pin: 0}, in)
	if !errors.Is(err, domain.ErrInputConnected) {
		t.Fatalf("expected ErrInputConnected, got %v", err)
	}
	if g.LinkCount() != 1 {
		t.Errorf("expected the original link to survive, got %d links", g.LinkCount())
	}

	src, ok := g.InputSource(in)
	if !ok || src.Node != a {
		t.Errorf("expected input still fed by a, got %v", src)
	}
}

func TestGraph_IntWidensToFloat(t *testing.T) {
	intSource := &domain.NodeType{
		Name: "int_source",
		Outputs: []domain.PinDef{
			{Name: "out", Type: domain.PinTypeInt},
		},
	}

	g := domain.NewGraph()
	src := g.AddNode(intSource, "i")
	sink := g.AddNode(scalarSinkType(), "s")

	err := g.Connect(
		domain.PinAddr{Node: src, Pin: 0},
		domain.PinAddr{Node: sink, Pin: 0},
	)
	if err != nil {
		t.Fatalf("int output into float input should connect, got %v", err)
	}
}

func TestGraph_ParamEditsAreNotStructural(t *testing.T) {
	g := domain.NewGraph()
	id := g.AddNode(meshSourceType(), "src")

	topoBefore := g.TopologyVersion()
	n, _ := g.Node(id)
	paramBefore := n.ParamVersion()

	if err := g.SetParam(id, "size", domain.Vec3Value(2, 2, 2)); err != nil {
		t.Fatal(err)
	}

	if n.ParamVersion() != paramBefore+1 {
		t.Errorf("expected param version bump, got %d", n.ParamVersion())
	}
	if g.TopologyVersion() != topoBefore {
		t.Error("param edit must not bump topology version")
	}
}

func TestGraph_RemoveNodeCascades(t *testing.T) {
	g := domain.NewGraph()
	src := g.AddNode(meshSourceType(), "src")
	f1 := g.AddNode(meshFilterType(), "f1")
	f2 := g.AddNode(meshFilterType(), "f2")

	mustConnect := func(from, to domain.NodeID) {
		t.Helper()
		if err := g.Connect(domain.PinAddr{Node: from, Pin: 0}, domain.PinAddr{Node: to, Pin: 0}); err != nil {
			t.Fatal(err)
		}
	}
	mustConnect(src, f1)
	mustConnect(f1, f2)
	if err := g.SetOutput(src); err != nil {
		t.Fatal(err)
	}

	type event struct {
		id      domain.NodeID
		removed bool
	}
	var events []event
	g.SetInvalidateFunc(func(id domain.NodeID, removed bool) {
		events = append(events, event{id, removed})
	})

	if err := g.RemoveNode(src); err != nil {
		t.Fatal(err)
	}

	if g.LinkCount() != 1 {
		t.Errorf("expected only the f1->f2 link to survive, got %d", g.LinkCount())
	}
	if !g.Output().IsZero() {
		t.Error("removing the designated output must clear the designation")
	}

	if len(events) != 3 {
		t.Fatalf("expected 3 invalidation events, got %d", len(events))
	}
	if events[0] != (event{src, true}) {
		t.Errorf("expected removal event for src first, got %+v", events[0])
	}
	downstream := map[domain.NodeID]bool{events[1].id: true, events[2].id: true}
	if !downstream[f1] || !downstream[f2] {
		t.Errorf("expected f1 and f2 invalidated, got %+v", events[1:])
	}
	if events[1].removed || events[2].removed {
		t.Error("downstream nodes are invalidated, not removed")
	}
}

func TestGraph_DisconnectMissingLinkIsNoOp(t *testing.T) {
	g := domain.NewGraph()
	f := g.AddNode(meshFilterType(), "f")

	before := g.TopologyVersion()
	if err := g.Disconnect(domain.PinAddr{Node: f, Pin: 0}); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if g.TopologyVersion() != before {
		t.Error("no-op disconnect must not bump topology version")
	}
}

func TestGraph_Consumers(t *testing.T) {
	g := domain.NewGraph()
	src := g.AddNode(meshSourceType(), "src")
	f1 := g.AddNode(meshFilterType(), "f1")
	f2 := g.AddNode(meshFilterType(), "f2")

	for _, dst := range []domain.NodeID{f1, f2} {
		if err := g.Connect(domain.PinAddr{Node: src, Pin: 0}, domain.PinAddr{Node: dst, Pin: 0}); err != nil {
			t.Fatal(err)
		}
	}

	got := g.Consumers(src)
	if len(got) != 2 {
		t.Fatalf("expected 2 consumers, got %d", len(got))
	}
}

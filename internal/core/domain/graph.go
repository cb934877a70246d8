// Package domain contains the core domain model for the node graph: nodes,
// pins, links, parameter blocks, and the geometry values that flow between
// them.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Node is one operator instance in the graph. Nodes are owned exclusively by
// the Graph; links and cache entries refer to them by id, never by pointer.
type Node struct {
	ID    NodeID
	Type  *NodeType
	Label string

	params       Params
	paramVersion uint64
}

// Params returns the node's parameter block. Callers must treat it as
// read-only; mutation goes through Graph.SetParam so the param version is
// bumped.
func (n *Node) Params() Params {
	return n.params
}

// Param returns one parameter value.
func (n *Node) Param(key string) (ParamValue, bool) {
	v, ok := n.params[key]
	return v, ok
}

// ParamVersion returns the counter incremented on every parameter mutation.
func (n *Node) ParamVersion() uint64 {
	return n.paramVersion
}

type slot struct {
	node *Node // nil when the slot is free
	gen  uint32
}

// Graph is the store for nodes and links. It enforces the structural
// invariants (typed links, single incoming link per input, no dangling ids)
// and tracks a topology version that structural mutations bump.
//
// The store is not internally synchronized. Evaluation treats it as
// read-mostly; callers must not mutate the graph while an evaluation over it
// is in flight.
type Graph struct {
	slots  []slot
	free   []uint32
	links  []Link
	output NodeID

	topology     uint64
	onInvalidate func(id NodeID, removed bool)
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// SetInvalidateFunc installs the callback invoked for every node whose cached
// output can no longer be trusted after a structural removal. removed is true
// for the node that was itself removed, false for its downstream consumers.
// The cache layer subscribes here; the store itself has no cache dependency.
func (g *Graph) SetInvalidateFunc(fn func(id NodeID, removed bool)) {
	g.onInvalidate = fn
}

// TopologyVersion returns the counter bumped by every structural mutation.
// Parameter edits do not count as structural.
func (g *Graph) TopologyVersion() uint64 {
	return g.topology
}

// AddNode creates a node of the given type with its default parameters and
// returns its id.
func (g *Graph) AddNode(t *NodeType, label string) NodeID {
	if label == "" {
		label = t.Name
	}
	n := &Node{
		Type:   t,
		Label:  label,
		params: t.DefaultParams.Clone(),
	}
	if n.params == nil {
		n.params = make(Params)
	}

	var idx uint32
	if len(g.free) > 0 {
		idx = g.free[len(g.free)-1]
		g.free = g.free[:len(g.free)-1]
	} else {
		g.slots = append(g.slots, slot{})
		idx = uint32(len(g.slots) - 1)
	}
	g.slots[idx].gen++
	g.slots[idx].node = n
	n.ID = NodeID{Index: idx, Gen: g.slots[idx].gen}

	g.topology++
	return n.ID
}

// Node resolves an id to a live node. A stale id (freed slot or reused slot
// with a newer generation) resolves to nothing.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	if int(id.Index) >= len(g.slots) {
		return nil, false
	}
	s := g.slots[id.Index]
	if s.node == nil || s.gen != id.Gen {
		return nil, false
	}
	return s.node, true
}

// Nodes iterates over all live nodes in slot order.
func (g *Graph) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, s := range g.slots {
			if s.node == nil {
				continue
			}
			if !yield(s.node) {
				return
			}
		}
	}
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	return len(g.slots) - len(g.free)
}

// RemoveNode removes a node, cascades removal of every link touching it, and
// reports the node plus its transitive downstream consumers through the
// invalidation callback. Removing the designated output clears the
// designation.
func (g *Graph) RemoveNode(id NodeID) error {
	if _, ok := g.Node(id); !ok {
		return zerr.With(ErrUnknownNode, "node", id.String())
	}

	// Downstream closure is collected before the links vanish.
	stale := g.downstream(id)

	kept := g.links[:0]
	for _, l := range g.links {
		if l.Src.Node == id || l.Dst.Node == id {
			continue
		}
		kept = append(kept, l)
	}
	g.links = kept

	g.slots[id.Index].node = nil
	g.free = append(g.free, id.Index)
	if g.output == id {
		g.output = NodeID{}
	}
	g.topology++

	if g.onInvalidate != nil {
		g.onInvalidate(id, true)
		for _, d := range stale {
			g.onInvalidate(d, false)
		}
	}
	return nil
}

// downstream returns every node that transitively consumes an output of id,
// excluding id itself.
func (g *Graph) downstream(id NodeID) []NodeID {
	seen := map[NodeID]bool{id: true}
	queue := []NodeID{id}
	var out []NodeID
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, l := range g.links {
			if l.Src.Node != cur || seen[l.Dst.Node] {
				continue
			}
			seen[l.Dst.Node] = true
			out = append(out, l.Dst.Node)
			queue = append(queue, l.Dst.Node)
		}
	}
	return out
}

// SetParam sets one parameter and bumps the node's param version. The
// topology version is untouched; parameter edits are not structural.
func (g *Graph) SetParam(id NodeID, key string, value ParamValue) error {
	n, ok := g.Node(id)
	if !ok {
		return zerr.With(ErrUnknownNode, "node", id.String())
	}
	n.params[key] = value
	n.paramVersion++
	return nil
}

// Connect adds a link from an output pin to an input pin. It fails with
// ErrTypeMismatch on incompatible pin types and ErrInputConnected when the
// destination input already has an incoming link; the graph is unchanged on
// failure.
func (g *Graph) Connect(src, dst PinAddr) error {
	srcNode, ok := g.Node(src.Node)
	if !ok {
		return zerr.With(ErrUnknownNode, "node", src.Node.String())
	}
	dstNode, ok := g.Node(dst.Node)
	if !ok {
		return zerr.With(ErrUnknownNode, "node", dst.Node.String())
	}
	if src.Pin < 0 || src.Pin >= len(srcNode.Type.Outputs) {
		return zerr.With(ErrUnknownPin, "pin", src.String())
	}
	if dst.Pin < 0 || dst.Pin >= len(dstNode.Type.Inputs) {
		return zerr.With(ErrUnknownPin, "pin", dst.String())
	}

	srcType := srcNode.Type.Outputs[src.Pin].Type
	dstType := dstNode.Type.Inputs[dst.Pin].Type
	if !Compatible(srcType, dstType) {
		err := zerr.With(ErrTypeMismatch, "src_type", srcType.String())
		return zerr.With(err, "dst_type", dstType.String())
	}

	if _, connected := g.InputSource(dst); connected {
		return zerr.With(ErrInputConnected, "pin", dst.String())
	}

	g.links = append(g.links, Link{Src: src, Dst: dst})
	g.topology++
	return nil
}

// Disconnect removes the incoming link of an input pin. Disconnecting a pin
// with no incoming link is a no-op.
func (g *Graph) Disconnect(dst PinAddr) error {
	dstNode, ok := g.Node(dst.Node)
	if !ok {
		return zerr.With(ErrUnknownNode, "node", dst.Node.String())
	}
	if dst.Pin < 0 || dst.Pin >= len(dstNode.Type.Inputs) {
		return zerr.With(ErrUnknownPin, "pin", dst.String())
	}
	for i, l := range g.links {
		if l.Dst == dst {
			g.links = append(g.links[:i], g.links[i+1:]...)
			g.topology++
			return nil
		}
	}
	return nil
}

// SetOutput designates the node whose value becomes the evaluation snapshot.
func (g *Graph) SetOutput(id NodeID) error {
	if _, ok := g.Node(id); !ok {
		return zerr.With(ErrUnknownNode, "node", id.String())
	}
	g.output = id
	g.topology++
	return nil
}

// Output returns the designated output node id, or the zero id when none is
// set.
func (g *Graph) Output() NodeID {
	return g.output
}

// InputSource resolves which output pin feeds the given input pin. An input
// pin has at most one incoming link.
func (g *Graph) InputSource(dst PinAddr) (PinAddr, bool) {
	for _, l := range g.links {
		if l.Dst == dst {
			return l.Src, true
		}
	}
	return PinAddr{}, false
}

// Consumers returns the deduplicated set of nodes directly consuming any
// output of id.
func (g *Graph) Consumers(id NodeID) []NodeID {
	seen := make(map[NodeID]bool)
	var out []NodeID
	for _, l := range g.links {
		if l.Src.Node == id && !seen[l.Dst.Node] {
			seen[l.Dst.Node] = true
			out = append(out, l.Dst.Node)
		}
	}
	return out
}

// Links returns a copy of all links.
func (g *Graph) Links() []Link {
	out := make([]Link, len(g.links))
	copy(out, g.links)
	return out
}

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int {
	return len(g.links)
}

package domain

import "fmt"

// NodeID identifies a node in the graph arena. The generation counter
// distinguishes a live node from a removed one whose slot was reused, so a
// stale id held by a link or cache entry can be rejected in O(1) instead of
// silently resolving to the wrong node.
type NodeID struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether the id is the zero value, which never names a node.
func (id NodeID) IsZero() bool {
	return id == NodeID{}
}

// String returns the id in "n<index>.<gen>" form.
func (id NodeID) String() string {
	return fmt.Sprintf("n%d.%d", id.Index, id.Gen)
}

// PinAddr addresses one pin on one node. The same struct is used for both
// ends of a link; direction is implied by position (source pins are outputs,
// destination pins are inputs).
type PinAddr struct {
	Node NodeID
	Pin  int
}

func (p PinAddr) String() string {
	return fmt.Sprintf("%s[%d]", p.Node, p.Pin)
}

// Link connects one output pin to one input pin. Links are owned by the
// Graph and removed whenever either endpoint's node is removed.
type Link struct {
	Src PinAddr
	Dst PinAddr
}

package eval

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/eetumartola/grapho/internal/core/domain"
)

// absentInputVersion is the fixed sentinel folded into a fingerprint for an
// unconnected input pin. An absent optional input is therefore always clean
// unless the node itself changes; required-but-absent is surfaced by the
// executor, not the tracker. Real output versions start at 1 and never
// collide with it.
const absentInputVersion uint64 = 0

// fingerprint combines a node's own param version with the identity and
// output version of every resolved input into a single digest. That is the
// entire dirtiness model: counters, never content hashes, so an edit that is
// later reverted still recomputes. Versions for upstream nodes come from the
// current run's outputs map, which evaluation order guarantees is populated
// before any consumer is fingerprinted.
func fingerprint(g *domain.Graph, n *domain.Node, versions map[domain.NodeID]uint64) uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	put(n.ParamVersion())
	for pin := range n.Type.Inputs {
		src, connected := g.InputSource(domain.PinAddr{Node: n.ID, Pin: pin})
		if !connected {
			put(absentInputVersion)
			continue
		}
		// Source identity is part of the fingerprint so relinking an input
		// to a different upstream node dirties the consumer even across
		// slot reuse.
		put(uint64(src.Node.Index)<<32 | uint64(src.Node.Gen))
		put(uint64(src.Pin) + 1)
		put(versions[src.Node])
	}
	return h.Sum64()
}

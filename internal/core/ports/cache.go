package ports

import "github.com/eetumartola/grapho/internal/core/domain"

// EvalCache stores the most recent computed output per node. One cache is
// scoped to one graph; independent graphs never share entries.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type EvalCache interface {
	// Get returns the entry for a node only when its stored fingerprint
	// equals the one the dirty tracker computed for the current run. A
	// mismatch or absent entry is a miss.
	Get(id domain.NodeID, fingerprint uint64) (*domain.CacheEntry, bool)

	// Put stores a freshly computed entry, overwriting any previous one.
	Put(id domain.NodeID, entry domain.CacheEntry)

	// Invalidate marks a node's entry stale without freeing it. Used when an
	// upstream structural edit makes the entry untrustworthy.
	Invalidate(id domain.NodeID)

	// Remove frees a node's entry. Called when the node itself is removed so
	// large geometry buffers do not leak.
	Remove(id domain.NodeID)

	// Stats returns aggregate hit/miss counters.
	Stats() domain.CacheStats
}

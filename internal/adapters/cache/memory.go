// Package cache implements the in-memory evaluation cache.
package cache

import (
	"sync"

	"github.com/eetumartola/grapho/internal/core/domain"
	"github.com/eetumartola/grapho/internal/core/ports"
)

var _ ports.EvalCache = (*Memory)(nil)

type slot struct {
	entry domain.CacheEntry
	stale bool
}

// Memory is a map-backed ports.EvalCache scoped to one graph. Entries are
// retained while their node exists; geometry buffers can be large but instant
// re-display after undo-style edits is worth more than aggressive eviction.
// A future extension could add an LRU bound keyed by total buffer bytes.
type Memory struct {
	mu      sync.Mutex
	entries map[domain.NodeID]*slot
	hits    uint64
	misses  uint64
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[domain.NodeID]*slot),
	}
}

// Get returns the node's entry when its stored fingerprint matches and the
// entry has not been invalidated, counting the lookup as a hit or miss.
func (c *Memory) Get(id domain.NodeID, fingerprint uint64) (*domain.CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.entries[id]
	if !ok || s.stale || s.entry.Fingerprint != fingerprint {
		c.misses++
		return nil, false
	}
	s.entry.Hits++
	c.hits++
	return &s.entry, true
}

// Put stores a freshly computed entry, overwriting any previous one and
// clearing a stale mark.
func (c *Memory) Put(id domain.NodeID, entry domain.CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = &slot{entry: entry}
}

// Invalidate marks an entry stale so no future Get can match it. The payload
// stays allocated until overwritten; the entry is invalidated, not freed.
func (c *Memory) Invalidate(id domain.NodeID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.entries[id]; ok {
		s.stale = true
	}
}

// Remove frees the node's entry.
func (c *Memory) Remove(id domain.NodeID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Stats returns aggregate counters.
func (c *Memory) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.CacheStats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

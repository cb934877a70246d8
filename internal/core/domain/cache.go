package domain

// CacheEntry is the most recent computed result of one node. The fingerprint
// records the param version and input output-versions the result was computed
// from; the dirty tracker computes the same combination to decide whether the
// entry may be served.
type CacheEntry struct {
	// Outputs are the node's output values, tombstones when the node failed.
	Outputs []Value

	// Fingerprint is the xxhash digest of the node's param version and the
	// identity plus output version of every resolved input.
	Fingerprint uint64

	// OutputVersion is the monotonically increasing stamp assigned when the
	// entry was computed. Consumers fold it into their own fingerprints, so
	// a recompute here dirties everything downstream.
	OutputVersion uint64

	// Err is the node's recorded failure, replayed on cache hits so an
	// unchanged failing subgraph reports the same error without recompute.
	Err error

	// Hits counts how many evaluations this entry was served to.
	Hits uint64
}

// CacheStats aggregates evaluation cache counters.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

package eval

import (
	"time"

	"github.com/eetumartola/grapho/internal/core/domain"
)

// Status is a node's terminal state for one evaluation run.
type Status string

const (
	// StatusClean means the cache served the node's last successful result.
	StatusClean Status = "clean"
	// StatusDone means the node recomputed successfully.
	StatusDone Status = "done"
	// StatusFailed means the node's own compute call failed.
	StatusFailed Status = "failed"
	// StatusPoisoned means the node consumed a failed upstream output and
	// never ran its compute function.
	StatusPoisoned Status = "poisoned"
)

// NodeReport is one node's record in an evaluation report. Cache hits carry
// near-zero durations and the hit flag; replayed failures keep their original
// error with the hit flag set.
type NodeReport struct {
	Node     domain.NodeID
	Label    string
	Status   Status
	CacheHit bool
	Duration time.Duration
	Err      error

	// Origin is set on poisoned entries: the node whose own failure started
	// the error chain.
	Origin domain.NodeID
}

// Report is the immutable record of one evaluation run. When scheduling
// itself failed (cycle, missing output designation) Structural holds that
// error and Entries is empty; otherwise Entries lists every evaluated node in
// evaluation order.
type Report struct {
	Structural error
	Entries    []NodeReport
	Total      time.Duration
}

// SlowestNode returns the entry with the longest compute duration, or false
// for an empty report.
func (r *Report) SlowestNode() (NodeReport, bool) {
	if len(r.Entries) == 0 {
		return NodeReport{}, false
	}
	slowest := r.Entries[0]
	for _, e := range r.Entries[1:] {
		if e.Duration > slowest.Duration {
			slowest = e
		}
	}
	return slowest, true
}

// HitRatio returns the fraction of nodes served from cache, or 0 for an
// empty report.
func (r *Report) HitRatio() float64 {
	if len(r.Entries) == 0 {
		return 0
	}
	hits := 0
	for _, e := range r.Entries {
		if e.CacheHit {
			hits++
		}
	}
	return float64(hits) / float64(len(r.Entries))
}

// Errored returns every entry carrying an error, poisoned ones included.
func (r *Report) Errored() []NodeReport {
	var out []NodeReport
	for _, e := range r.Entries {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}

// reportBuilder accumulates node entries during a run. The Report it seals is
// immutable once returned to the caller.
type reportBuilder struct {
	entries []NodeReport
	started time.Time
}

func newReportBuilder() *reportBuilder {
	return &reportBuilder{started: time.Now()}
}

func (b *reportBuilder) add(e NodeReport) {
	b.entries = append(b.entries, e)
}

func (b *reportBuilder) seal() *Report {
	return &Report{
		Entries: b.entries,
		Total:   time.Since(b.started),
	}
}

func structuralReport(err error) *Report {
	return &Report{Structural: err}
}

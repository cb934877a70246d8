package eval_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eetumartola/grapho/internal/core/domain"
	"github.com/eetumartola/grapho/internal/engine/eval"
)

func TestReport_EmptyReport(t *testing.T) {
	r := &eval.Report{}

	_, ok := r.SlowestNode()
	assert.False(t, ok)
	assert.Zero(t, r.HitRatio())
	assert.Empty(t, r.Errored())
}

func TestReport_Accessors(t *testing.T) {
	r := &eval.Report{
		Entries: []eval.NodeReport{
			{Label: "box", Status: eval.StatusClean, CacheHit: true},
			{Label: "transform", Status: eval.StatusDone, Duration: 5 * time.Millisecond},
			{Label: "merge", Status: eval.StatusFailed, Duration: time.Millisecond, Err: domain.ErrComputeFailed},
			{Label: "output", Status: eval.StatusPoisoned, Err: domain.ErrUpstreamFailure},
		},
	}

	slowest, ok := r.SlowestNode()
	assert.True(t, ok)
	assert.Equal(t, "transform", slowest.Label)

	assert.Equal(t, 0.25, r.HitRatio())

	errored := r.Errored()
	assert.Len(t, errored, 2)
	assert.Equal(t, "merge", errored[0].Label)
	assert.Equal(t, "output", errored[1].Label)
}

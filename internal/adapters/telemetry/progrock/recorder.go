// Package progrock provides the progrock-backed tracer: evaluation progress
// rendered as a live vertex tape.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/eetumartola/grapho/internal/core/ports"
)

var _ ports.Tracer = (*Recorder)(nil)

// Recorder implements ports.Tracer on a progrock tape. Each evaluated node
// becomes one vertex; cache hits show as cached vertices.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start opens a vertex for one node evaluation.
func (r *Recorder) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Span{vertex: v}
}

// EmitPlan records the evaluation order as a single vertex so the tape shows
// what is about to run.
func (r *Recorder) EmitPlan(_ context.Context, nodeLabels []string) {
	v := r.rec.Vertex(digest.FromString("plan"), "plan")
	for i, label := range nodeLabels {
		_, _ = fmt.Fprintf(v.Stdout(), "%d. %s\n", i+1, label)
	}
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

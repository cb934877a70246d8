package ports

import (
	"context"
	"io"
)

// Tracer is the entry point for recording evaluation progress. One span is
// opened per evaluated node.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals the ordered set of nodes about to be evaluated.
	EmitPlan(ctx context.Context, nodeLabels []string)
}

// Span represents one node's slice of an evaluation run.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records a failure for the span.
	RecordError(err error)
	// Cached marks the span as served from the evaluation cache.
	Cached()
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Placeholder for future options; kept so the option pattern is stable.
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

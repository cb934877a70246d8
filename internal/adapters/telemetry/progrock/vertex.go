package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	done   bool
}

// Write streams output onto the vertex.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// End completes the vertex. A span already ended through RecordError stays
// ended.
func (s *Span) End() {
	if s.done {
		return
	}
	s.done = true
	s.vertex.Done(nil)
}

// RecordError completes the vertex with a failure.
func (s *Span) RecordError(err error) {
	if s.done {
		return
	}
	s.done = true
	s.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (s *Span) Cached() {
	s.vertex.Cached()
}

// SetAttribute records a key-value pair on the vertex output stream.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

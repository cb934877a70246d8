package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eetumartola/grapho/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_SpanLifecycle(t *testing.T) {
	recorder := progrock.New()

	_, span := recorder.Start(context.Background(), "box")
	require.NotNil(t, span)

	_, err := span.Write([]byte("8 vertices\n"))
	assert.NoError(t, err)
	span.SetAttribute("triangles", 12)
	span.End()

	// Ending twice, or ending after a recorded error, must not panic.
	span.End()

	_, failed := recorder.Start(context.Background(), "transform")
	failed.RecordError(errors.New("bad matrix"))
	failed.End()

	recorder.EmitPlan(context.Background(), []string{"box", "transform"})
	assert.NoError(t, recorder.Close())
}

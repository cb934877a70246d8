package eval

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/eetumartola/grapho/internal/core/ports"
)

// ExecutorNodeID is the unique identifier for the executor Graft node.
const ExecutorNodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        ExecutorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Executor, error) {
			return NewExecutor(), nil
		},
	})
}

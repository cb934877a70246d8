package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/eetumartola/grapho/internal/core/ports"
)

const NodeID graft.ID = "adapter.eval_cache"

func init() {
	graft.Register(graft.Node[ports.EvalCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.EvalCache, error) {
			return NewMemory(), nil
		},
	})
}

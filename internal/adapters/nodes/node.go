package nodes

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/eetumartola/grapho/internal/core/ports"
)

const NodeID graft.ID = "adapter.node_registry"

func init() {
	graft.Register(graft.Node[ports.NodeRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.NodeRegistry, error) {
			return NewRegistry(), nil
		},
	})
}

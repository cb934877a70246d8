package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/eetumartola/grapho/internal/adapters/nodes"
	"github.com/eetumartola/grapho/internal/core/ports"
)

const NodeID graft.ID = "adapter.plan_loader"

func init() {
	graft.Register(graft.Node[ports.PlanLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{nodes.NodeID},
		Run: func(ctx context.Context) (ports.PlanLoader, error) {
			registry, err := graft.Dep[ports.NodeRegistry](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileLoader(registry), nil
		},
	})
}

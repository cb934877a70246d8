package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/eetumartola/grapho/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"github.com/eetumartola/grapho/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/eetumartola/grapho/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/eetumartola/grapho/internal/adapters/nodes"  //nolint:depguard // Wired in app layer
	"github.com/eetumartola/grapho/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/eetumartola/grapho/internal/core/ports"
	"github.com/eetumartola/grapho/internal/engine/eval"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application pieces for the CLI entry point.
type Components struct {
	App      *App
	Logger   ports.Logger
	Loader   ports.PlanLoader
	Registry ports.NodeRegistry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			eval.ExecutorNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			nodes.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.PlanLoader](ctx)
	if err != nil {
		return nil, err
	}
	evalCache, err := graft.Dep[ports.EvalCache](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, evalCache, executor, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.PlanLoader](ctx)
	if err != nil {
		return nil, err
	}
	registry, err := graft.Dep[ports.NodeRegistry](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:      application,
		Logger:   log,
		Loader:   loader,
		Registry: registry,
	}, nil
}

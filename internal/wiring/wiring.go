// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/eetumartola/grapho/internal/adapters/cache"
	_ "github.com/eetumartola/grapho/internal/adapters/config"
	_ "github.com/eetumartola/grapho/internal/adapters/logger"
	_ "github.com/eetumartola/grapho/internal/adapters/nodes"
	_ "github.com/eetumartola/grapho/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/eetumartola/grapho/internal/app"
	_ "github.com/eetumartola/grapho/internal/engine/eval"
)

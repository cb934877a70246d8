// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/eetumartola/grapho/internal/core/domain"
)

// Executor invokes a node's pure compute function with resolved input values.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Compute runs the node's compute function. inputs is ordered by input
	// pin index; an unconnected pin is the zero Value. The returned error is
	// one of the domain node-failure sentinels (InvalidParameter,
	// MissingRequiredInput, ComputeFailed); the engine, not the executor,
	// decides how the failure propagates.
	Compute(ctx context.Context, node *domain.Node, inputs []domain.Value) ([]domain.Value, error)
}

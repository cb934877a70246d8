package eval

import (
	"context"
	"errors"

	"go.trai.ch/zerr"

	"github.com/eetumartola/grapho/internal/core/domain"
	"github.com/eetumartola/grapho/internal/core/ports"
)

var _ ports.Executor = (*Executor)(nil)

// Executor is the default ports.Executor: it resolves the node's compute
// function through its type descriptor, enforces the pin contract on both
// sides of the call, and classifies failures into the domain taxonomy.
type Executor struct{}

// NewExecutor creates the default executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Compute validates required inputs, widens values where the type system
// allows, invokes the node's compute function, and checks the outputs against
// the declared signature.
func (e *Executor) Compute(ctx context.Context, node *domain.Node, inputs []domain.Value) ([]domain.Value, error) {
	t := node.Type
	if len(inputs) != len(t.Inputs) {
		err := zerr.With(domain.ErrComputeFailed, "node", node.ID.String())
		return nil, zerr.With(err, "reason", "input arity mismatch")
	}

	resolved := make([]domain.Value, len(inputs))
	for i, pin := range t.Inputs {
		in := inputs[i]
		if in.Absent() {
			if !pin.Optional {
				err := zerr.With(domain.ErrMissingRequiredInput, "node", node.ID.String())
				return nil, zerr.With(err, "pin", pin.Name)
			}
			resolved[i] = in
			continue
		}
		resolved[i] = in.Widen(pin.Type)
	}

	outs, err := t.Compute(ctx, resolved, node.Params())
	if err != nil {
		return nil, classify(err, node)
	}

	if len(outs) != len(t.Outputs) {
		err := zerr.With(domain.ErrComputeFailed, "node", node.ID.String())
		return nil, zerr.With(err, "reason", "output arity mismatch")
	}
	for i, pin := range t.Outputs {
		if !outs[i].Valid || outs[i].Type != pin.Type {
			err := zerr.With(domain.ErrComputeFailed, "node", node.ID.String())
			return nil, zerr.With(err, "pin", pin.Name)
		}
	}
	return outs, nil
}

// classify maps arbitrary compute errors onto the node failure taxonomy.
// Errors already carrying a taxonomy sentinel pass through with node metadata
// attached; anything else becomes ComputeFailed.
func classify(err error, node *domain.Node) error {
	if errors.Is(err, domain.ErrInvalidParameter) ||
		errors.Is(err, domain.ErrMissingRequiredInput) ||
		errors.Is(err, domain.ErrComputeFailed) {
		return zerr.With(err, "node", node.ID.String())
	}
	wrapped := zerr.Wrap(domain.ErrComputeFailed, err.Error())
	return zerr.With(wrapped, "node", node.ID.String())
}

package ports

import "github.com/eetumartola/grapho/internal/core/domain"

// NodeRegistry resolves stable type identifiers to node type descriptors.
// The engine is agnostic to what types exist; it only needs lookup plus the
// pin signatures the descriptor carries.
type NodeRegistry interface {
	// Lookup returns the descriptor for a type name.
	Lookup(name string) (*domain.NodeType, bool)

	// Types returns all registered type names in sorted order.
	Types() []string
}

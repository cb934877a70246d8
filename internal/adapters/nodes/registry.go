package nodes

import (
	"sort"
	"sync"

	"go.trai.ch/zerr"

	"github.com/eetumartola/grapho/internal/core/domain"
	"github.com/eetumartola/grapho/internal/core/ports"
)

var _ ports.NodeRegistry = (*Registry)(nil)

// Registry is the closed catalogue of node types. Types are registered once
// at startup; lookups during evaluation take no lock beyond the RWMutex read.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*domain.NodeType
}

// NewRegistry creates a registry pre-populated with the built-in types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]*domain.NodeType)}
	for _, t := range Builtins() {
		r.types[t.Name] = t
	}
	return r
}

// Register adds a type. Registering a name twice is a programming error and
// rejected so a plugin cannot shadow a builtin.
func (r *Registry) Register(t *domain.NodeType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[t.Name]; ok {
		return zerr.With(zerr.New("node type already registered"), "type", t.Name)
	}
	r.types[t.Name] = t
	return nil
}

// Lookup returns the descriptor for a type name.
func (r *Registry) Lookup(name string) (*domain.NodeType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Types returns all registered type names in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package catalog

import (
	"context"
	"fmt"
	"sync"
)

// Provider resolves a catalog snapshot from some backing source. The
// matching core never fetches on its own: a snapshot is resolved once,
// before matching begins, and handed in as a caller-owned value.
type Provider interface {
	// Name returns the provider name (e.g., "static", "file", "http").
	Name() string

	// Fetch resolves a catalog snapshot. A nil catalog with a nil error
	// means the source is healthy but has no catalog to offer.
	Fetch(ctx context.Context) (Catalog, error)
}

// Factory is a function that creates a provider instance from its options.
type Factory func(options map[string]any) (Provider, error)

// Registry manages provider factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register registers a provider factory.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create creates a provider instance by name.
func (r *Registry) Create(name string, options map[string]any) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return factory(options)
}

// List returns the registered provider names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// Has returns true if a provider is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// DefaultRegistry is the global provider registry. The built-in providers
// register themselves here.
var DefaultRegistry = NewRegistry()

// Register registers a provider factory in the default registry.
func Register(name string, factory Factory) {
	DefaultRegistry.Register(name, factory)
}

// Create creates a provider instance from the default registry.
func Create(name string, options map[string]any) (Provider, error) {
	return DefaultRegistry.Create(name, options)
}

package catalog

import "context"

// StaticProvider serves a fixed in-memory catalog snapshot. It backs tests
// and the bundled-fallback catalog that ships when no remote source is
// reachable.
type StaticProvider struct {
	catalog Catalog
}

// NewStaticProvider creates a provider serving the given snapshot.
func NewStaticProvider(c Catalog) *StaticProvider {
	return &StaticProvider{catalog: c}
}

// Name returns the provider name.
func (*StaticProvider) Name() string {
	return "static"
}

// Fetch returns the fixed snapshot.
func (p *StaticProvider) Fetch(_ context.Context) (Catalog, error) {
	return p.catalog, nil
}

func init() {
	Register("static", func(options map[string]any) (Provider, error) {
		c, _ := options["catalog"].(Catalog)
		return NewStaticProvider(c), nil
	})
}

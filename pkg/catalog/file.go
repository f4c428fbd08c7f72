package catalog

import (
	"context"
	"fmt"
	"os"
)

// FileProvider loads a catalog snapshot from a JSON document on disk. This
// is the local-cache side of catalog resolution: the last successfully
// fetched catalog is written to disk and reloaded when the network source is
// unavailable.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading the given JSON document.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Name returns the provider name.
func (*FileProvider) Name() string {
	return "file"
}

// Fetch reads and parses the catalog document. A missing file resolves to a
// nil catalog without error, so a cold cache falls through to the next
// provider in the chain.
func (p *FileProvider) Fetch(_ context.Context) (Catalog, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Op: "read", Err: err}
	}

	c, err := ParseDocument(data)
	if err != nil {
		return nil, &ProviderError{Provider: p.Name(), Op: "parse", Err: err}
	}
	return c, nil
}

// Write persists a catalog snapshot to the provider's path as a JSON
// document, for use as a local fallback on later runs.
func (p *FileProvider) Write(c Catalog) error {
	data, err := marshalDocument(c)
	if err != nil {
		return &ProviderError{Provider: p.Name(), Op: "encode", Err: err}
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return &ProviderError{Provider: p.Name(), Op: "write", Err: err}
	}
	return nil
}

func init() {
	Register("file", func(options map[string]any) (Provider, error) {
		path, ok := options["path"].(string)
		if !ok || path == "" {
			return nil, fmt.Errorf("%w: file provider requires a path option",
				ErrProviderUnavailable)
		}
		return NewFileProvider(path), nil
	})
}

package meditationmatch

import (
	"time"

	"github.com/quietform/meditation-match/pkg/cache"
	"github.com/quietform/meditation-match/pkg/catalog"
	"github.com/quietform/meditation-match/pkg/filename"
)

// DefaultNameMatchThreshold gates automatic acceptance of fuzzy name
// matches.
const DefaultNameMatchThreshold = 0.5

// Config is the main configuration for the Client.
type Config struct {
	// NameMatchThreshold is the minimum similarity score for a fuzzy name
	// match to be accepted
	NameMatchThreshold float64 `json:"name_match_threshold"`

	// Relativize derives the persisted storage-relative path from a
	// platform file URI. Platforms with a different storage layout supply
	// their own derivation.
	Relativize func(uri string) string `json:"-"`

	// Providers are tried in order until one resolves a catalog snapshot
	Providers []catalog.Provider `json:"-"`

	// Store persists the file-location map between import sessions
	Store catalog.LocationStore `json:"-"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		NameMatchThreshold: DefaultNameMatchThreshold,
		Relativize:         filename.StorageRelativePath,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.NameMatchThreshold < 0 || c.NameMatchThreshold > 1 {
		return &ConfigError{
			Field:   "name_match_threshold",
			Details: "must be between 0 and 1",
		}
	}
	if c.Relativize == nil {
		return &ConfigError{
			Field:   "relativize",
			Details: "path relativizer must not be nil",
		}
	}
	return nil
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithNameMatchThreshold sets the acceptance threshold for fuzzy name
// matches.
func WithNameMatchThreshold(threshold float64) Option {
	return func(c *Config) {
		c.NameMatchThreshold = threshold
	}
}

// WithPathRelativizer overrides how platform URIs become storage-relative
// paths.
func WithPathRelativizer(relativize func(uri string) string) Option {
	return func(c *Config) {
		c.Relativize = relativize
	}
}

// WithCatalogProvider appends a catalog provider to the resolution chain.
func WithCatalogProvider(p catalog.Provider) Option {
	return func(c *Config) {
		c.Providers = append(c.Providers, p)
	}
}

// WithStaticCatalog appends a fixed in-memory catalog snapshot to the
// resolution chain, typically as the bundled fallback.
func WithStaticCatalog(snapshot catalog.Catalog) Option {
	return func(c *Config) {
		c.Providers = append(c.Providers, catalog.NewStaticProvider(snapshot))
	}
}

// WithFileCatalog appends a JSON catalog document on disk to the resolution
// chain.
func WithFileCatalog(path string) Option {
	return func(c *Config) {
		c.Providers = append(c.Providers, catalog.NewFileProvider(path))
	}
}

// WithHTTPCatalog appends a remote JSON catalog endpoint to the resolution
// chain, with snapshots cached in memory for the given TTL.
func WithHTTPCatalog(url string, ttl time.Duration) Option {
	return func(c *Config) {
		c.Providers = append(c.Providers, catalog.NewHTTPProvider(url,
			catalog.WithSnapshotCache(cache.NewMemoryCache(), ttl)))
	}
}

// WithLocationStore sets the store persisting the file-location map.
func WithLocationStore(s catalog.LocationStore) Option {
	return func(c *Config) {
		c.Store = s
	}
}

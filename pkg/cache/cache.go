// Package cache provides small in-memory caches for resolved catalog
// snapshots.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value from the cache. The second return value is
	// false if the key is not present or has expired.
	Get(ctx context.Context, key string) (any, bool)

	// Set stores a value in the cache. A zero ttl uses the backend's
	// default.
	Set(ctx context.Context, key string, value any, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string)

	// Clear removes all entries from the cache.
	Clear(ctx context.Context)

	// Close releases any resources held by the cache.
	Close() error
}

// NullCache is a cache that stores nothing. Useful for disabling caching.
type NullCache struct{}

// NewNullCache creates a new NullCache.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get always misses.
func (*NullCache) Get(_ context.Context, _ string) (any, bool) {
	return nil, false
}

// Set does nothing.
func (*NullCache) Set(_ context.Context, _ string, _ any, _ time.Duration) {}

// Delete does nothing.
func (*NullCache) Delete(_ context.Context, _ string) {}

// Clear does nothing.
func (*NullCache) Clear(_ context.Context) {}

// Close does nothing.
func (*NullCache) Close() error { return nil }

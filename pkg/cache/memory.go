package cache

import (
	"context"
	"sync"
	"time"
)

// entry is a single cached value with its expiry and insertion time.
type entry struct {
	value     any
	storedAt  time.Time
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is a small in-memory cache with per-entry TTL and a capacity
// bound. When the capacity is exceeded, expired entries are pruned first and
// the oldest remaining entry is evicted. There is no background goroutine;
// expiry is checked lazily on access.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]entry
	maxEntries int
	defaultTTL time.Duration
}

// MemoryCacheOption is a functional option for MemoryCache.
type MemoryCacheOption func(*MemoryCache)

// WithMaxEntries sets the maximum number of entries.
func WithMaxEntries(n int) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.maxEntries = n
	}
}

// WithDefaultTTL sets the TTL applied when Set is called with a zero ttl.
func WithDefaultTTL(ttl time.Duration) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.defaultTTL = ttl
	}
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache(opts ...MemoryCacheOption) *MemoryCache {
	c := &MemoryCache{
		entries:    make(map[string]entry),
		maxEntries: 128,
		defaultTTL: time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value, reporting a miss for expired entries.
func (c *MemoryCache) Get(_ context.Context, key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(time.Now()) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores a value, evicting as needed to stay within capacity.
func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	e := entry{value: value, storedAt: now}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	c.entries[key] = e

	if c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		c.evict(now, key)
	}
}

// evict prunes expired entries and, if the cache is still over capacity,
// removes the oldest entries. The just-written key is never evicted.
func (c *MemoryCache) evict(now time.Time, keep string) {
	for k, e := range c.entries {
		if k != keep && e.expired(now) {
			delete(c.entries, k)
		}
	}
	for len(c.entries) > c.maxEntries {
		oldestKey := ""
		var oldestAt time.Time
		for k, e := range c.entries {
			if k == keep {
				continue
			}
			if oldestKey == "" || e.storedAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = e.storedAt
			}
		}
		if oldestKey == "" {
			return
		}
		delete(c.entries, oldestKey)
	}
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *MemoryCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Close releases nothing for the memory backend.
func (c *MemoryCache) Close() error { return nil }

// Len returns the current number of entries, counting expired entries that
// have not yet been pruned.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

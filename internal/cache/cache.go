// internal/cache/cache.go
package cache

import (
	"strings"
	"sync"
	"time"
)

// Category prefixes. The category of a key is derived from its prefix;
// keys with no known prefix fall back to the shortest TTL.
const (
	PrefixOverview = "overview_"
	PrefixStats    = "stats_"
	PrefixCalendar = "calendar_"
	PrefixInsights = "insights_"
)

var categoryTTLs = map[string]time.Duration{
	PrefixOverview: 5 * time.Minute,
	PrefixStats:    10 * time.Minute,
	PrefixCalendar: 30 * time.Minute,
	PrefixInsights: 60 * time.Minute,
}

// Cache is a process-local, time-expiring memoization layer. Entries are
// never invalidated on writes; staleness up to the category TTL is an
// accepted tradeoff. Expired entries are treated as misses, not evicted.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, data any)
}

type entry struct {
	data      any
	timestamp time.Time
}

// TTLCache is the default Cache. The clock is injectable so tests can
// control expiry deterministically.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// Option configures a TTLCache.
type Option func(*TTLCache)

// WithClock replaces the cache's time source.
func WithClock(now func() time.Time) Option {
	return func(c *TTLCache) { c.now = now }
}

func New(opts ...Option) *TTLCache {
	c := &TTLCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the time-to-live of the key's category.
func TTL(key string) time.Duration {
	for prefix, ttl := range categoryTTLs {
		if strings.HasPrefix(key, prefix) {
			return ttl
		}
	}
	return categoryTTLs[PrefixOverview]
}

// Get returns the cached value, or a miss when the entry is absent or its
// category TTL has elapsed.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.timestamp) >= TTL(key) {
		return nil, false
	}
	return e.data, true
}

// Set stores the value with the current timestamp. Concurrent writers to
// the same key race benignly; recomputation is idempotent.
func (c *TTLCache) Set(key string, data any) {
	c.mu.Lock()
	c.entries[key] = entry{data: data, timestamp: c.now()}
	c.mu.Unlock()
}

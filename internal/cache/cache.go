package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is the freshness bound for cached list/analytics responses.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
}

// Cache is a process-wide key/value store with a fixed TTL. Expired entries
// are dropped lazily on the next Get for the same key; there is no
// background janitor. Safe for concurrent use.
type Cache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry

	now func() time.Time
}

// New creates a cache. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:   ttl,
		items: make(map[string]entry),
		now:   time.Now,
	}
}

// Get returns the cached value for key, or (nil, false) on miss or expiry.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.items, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the current timestamp.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry{value: value, storedAt: c.now()}
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeletePrefix removes every key starting with prefix.
func (c *Cache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]entry)
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

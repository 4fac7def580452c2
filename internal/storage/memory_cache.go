package storage

import (
	"context"
	"sync"
	"time"

	"chat-agent-service/internal/search"
)

type memoryEntry struct {
	results   []search.Result
	expiresAt time.Time
}

// MemoryCache is an in-memory search result cache used when Redis is
// unavailable. Entries are evicted oldest-first once maxEntries is
// reached.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	order      []string
	maxEntries int
}

// ------------------------------------------------------------------------------------------------------
// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
	}
}

// ------------------------------------------------------------------------------------------------------
func (c *MemoryCache) Get(_ context.Context, query string, count int) ([]search.Result, bool, error) {
	key := cacheKey(query, count)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}

	if time.Now().After(entry.expiresAt) {
		c.remove(key)
		return nil, false, nil
	}

	results := make([]search.Result, len(entry.results))
	copy(results, entry.results)
	return results, true, nil
}

// ------------------------------------------------------------------------------------------------------
func (c *MemoryCache) Set(_ context.Context, query string, count int, results []search.Result, ttl time.Duration) error {
	key := cacheKey(query, count)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
			c.remove(c.order[0])
		}
		c.order = append(c.order, key)
	}

	stored := make([]search.Result, len(results))
	copy(stored, results)
	c.entries[key] = memoryEntry{
		results:   stored,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// ------------------------------------------------------------------------------------------------------
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
	c.order = nil
	return nil
}

// ------------------------------------------------------------------------------------------------------
// remove deletes key from the entry map and the insertion order.
// Callers must hold the lock.
func (c *MemoryCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

package passkey

import (
	"context"
	"sync"
	"time"
)

type memoryCacheEntry struct {
	value   []byte
	expires time.Time
}

// MemoryCache is an in-memory fake of Cache for ceremony tests.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryCacheEntry)}
}

var _ Cache = (*MemoryCache)(nil)

func (c *MemoryCache) SetEx(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryCacheEntry{value: value, expires: time.Now().Add(ttl)}
	return nil
}

func (c *MemoryCache) GetDel(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	delete(c.entries, key)

	if time.Now().After(entry.expires) {
		return nil, false, nil
	}
	return entry.value, true, nil
}

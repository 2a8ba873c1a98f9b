// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Keeps a value slot and a TTL slot per key; expiry is caller-driven

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const ttlKeySuffix = "_ttl"

// MemoryCache implements the Cache interface using in-memory storage.
//
// Entries never expire natively: the TTL slot records the expiry instant
// and IsExpired reports it, but eviction only happens through Clear. This
// keeps "expired" observable instead of silently vanishing under readers.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		store: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves the value slot for key. Returns nil, nil when absent.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.store.Get(key)
	if !ok {
		return nil, nil
	}

	data := value.([]byte)
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores the value and records now+ttl in the TTL slot.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	c.store.Set(key, valueCopy, gocache.NoExpiration)
	c.store.Set(key+ttlKeySuffix, time.Now().Add(ttl).UnixMilli(), gocache.NoExpiration)

	return nil
}

// IsExpired reports whether key has no TTL record or its expiry has passed.
func (c *MemoryCache) IsExpired(ctx context.Context, key string) bool {
	value, ok := c.store.Get(key + ttlKeySuffix)
	if !ok {
		return true
	}

	return time.Now().UnixMilli() > value.(int64)
}

// Clear removes both slots for key. Absent keys are not an error.
func (c *MemoryCache) Clear(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.store.Delete(key)
	c.store.Delete(key + ttlKeySuffix)
	return nil
}

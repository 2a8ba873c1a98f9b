// ABOUTME: Cache port used by the use-case layer for TTL-based caching
// ABOUTME: Implementations can be in-memory, Redis, SQLite or any other key-value store

package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
//
// The cache keeps two logical slots per key: a value slot and a TTL slot.
// Get reads the value slot without consulting expiry; IsExpired consults
// only the TTL slot and never deletes anything. Callers are expected to
// check IsExpired before trusting a hit and to Clear stale keys themselves.
//
// Example usage:
//
//	if cache.IsExpired(ctx, "top_podcasts") {
//		_ = cache.Clear(ctx, "top_podcasts")
//	} else if data, err := cache.Get(ctx, "top_podcasts"); err == nil && data != nil {
//		// use data
//	}
type Cache interface {
	// Get retrieves the raw value stored under key.
	// Returns nil, nil when the key is absent (cache miss).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key and records now+ttl as its expiry instant.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// IsExpired reports whether the entry under key is stale. A key with no
	// TTL record is indistinguishable from an expired one: both return true.
	// IsExpired never removes data.
	IsExpired(ctx context.Context, key string) bool

	// Clear removes both the value and the TTL records for key.
	// Clearing an absent key is not an error.
	Clear(ctx context.Context, key string) error
}

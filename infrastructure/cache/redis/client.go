// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Stores the value and its expiry instant under two keys

package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"podcasts-app-api/pkg/config"
)

const ttlKeySuffix = "_ttl"

// RedisCache implements the Cache interface using Redis.
//
// No native Redis expiry is set: the TTL slot at <key>_ttl holds the
// expiry instant in unix milliseconds and staleness is decided by
// IsExpired, so expired values stay readable until a caller clears them.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache instance and verifies the
// connection.
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves the value slot for key. Returns nil, nil when absent.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	return val, nil
}

// Set stores the value and records now+ttl in the TTL slot.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	expiry := time.Now().Add(ttl).UnixMilli()

	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		return err
	}
	return c.client.Set(ctx, key+ttlKeySuffix, strconv.FormatInt(expiry, 10), 0).Err()
}

// IsExpired reports whether key has no TTL record or its expiry has passed.
func (c *RedisCache) IsExpired(ctx context.Context, key string) bool {
	val, err := c.client.Get(ctx, key+ttlKeySuffix).Result()
	if err != nil {
		return true
	}

	expiry, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return true
	}

	return time.Now().UnixMilli() > expiry
}

// Clear removes both slots for key. Deleting absent keys is not an error.
func (c *RedisCache) Clear(ctx context.Context, key string) error {
	return c.client.Del(ctx, key, key+ttlKeySuffix).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

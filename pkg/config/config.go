// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache and catalog settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Catalog contains remote directory API configuration
	Catalog CatalogConfig

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// HTTPTimeoutSeconds is the outbound HTTP client timeout
	HTTPTimeoutSeconds int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// TTLHours is the default time-to-live for cache entries
	TTLHours int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the cache database file location
	Path string
}

// CatalogConfig holds the remote directory API endpoints
type CatalogConfig struct {
	// TopPodcastsURL is the full top-podcasts feed URL
	TopPodcastsURL string

	// LookupURL is the lookup endpoint base URL
	LookupURL string

	// EpisodeLimit caps episode records per lookup
	EpisodeLimit int
}

// TTL returns the configured cache TTL as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// HTTPTimeout returns the outbound HTTP timeout as a duration.
func (c ServerConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8000"),
			HTTPTimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 30),
		},
		Cache: CacheConfig{
			Type:     getEnvOrDefault("CACHE_TYPE", "memory"),
			TTLHours: getEnvAsIntOrDefault("CACHE_TTL_HOURS", 24),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "podcasts_cache.db"),
			},
		},
		Catalog: CatalogConfig{
			TopPodcastsURL: getEnvOrDefault(
				"TOP_PODCASTS_URL",
				"https://itunes.apple.com/us/rss/toppodcasts/limit=100/genre=1310/json",
			),
			LookupURL:    getEnvOrDefault("LOOKUP_URL", "https://itunes.apple.com/lookup"),
			EpisodeLimit: getEnvAsIntOrDefault("EPISODE_LIMIT", 20),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "memory" && c.Cache.Type != "redis" && c.Cache.Type != "sqlite" {
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.TTLHours < 1 {
		return errors.New("cache TTL must be at least 1 hour")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Catalog.TopPodcastsURL == "" || c.Catalog.LookupURL == "" {
		return errors.New("catalog URLs cannot be empty")
	}

	if c.Catalog.EpisodeLimit < 1 {
		return errors.New("episode limit must be at least 1")
	}

	return nil
}

// ABOUTME: Main entry point for the Podcasts API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"podcasts-app-api/api"
	"podcasts-app-api/api/handlers"
	"podcasts-app-api/core/catalog"
	"podcasts-app-api/core/interfaces"
	"podcasts-app-api/core/podcast"
	"podcasts-app-api/infrastructure/cache/memory"
	"podcasts-app-api/infrastructure/cache/redis"
	"podcasts-app-api/infrastructure/cache/sqlite"
	stdhttp "podcasts-app-api/infrastructure/http/standard"
	logruslogger "podcasts-app-api/infrastructure/logger/logrus"
	"podcasts-app-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting Podcasts API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"cache_ttl":  cfg.Cache.TTL().String(),
	})

	cache := buildCache(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Server.HTTPTimeout())

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	repository := catalog.NewRepository(deps, catalog.Config{
		TopPodcastsURL: cfg.Catalog.TopPodcastsURL,
		LookupURL:      cfg.Catalog.LookupURL,
		EpisodeLimit:   cfg.Catalog.EpisodeLimit,
	})

	cacheTTL := cfg.Cache.TTL()
	service := podcast.NewService(
		podcast.NewGetTopPodcasts(deps, repository, cacheTTL),
		podcast.NewGetPodcastDetails(deps, repository, cacheTTL),
		podcast.NewGetEpisodeDetails(repository),
	)

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100,
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	podcastHandler := handlers.NewPodcastHandler(service)
	podcastHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache selects the cache backend, falling back to memory when a
// persistent backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}

// ABOUTME: GetTopPodcasts use case with write-through TTL caching
// ABOUTME: Collapses concurrent cache-missing fetches into a single flight

package podcast

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"

	"podcasts-app-api/core/interfaces"
)

// TopPodcastsCacheKey is the cache key for the top-podcasts listing.
const TopPodcastsCacheKey = "top_podcasts"

// GetTopPodcasts serves the top-podcasts listing, cache first.
type GetTopPodcasts struct {
	deps       interfaces.Dependencies
	repository Repository
	cacheTTL   time.Duration
	group      singleflight.Group
}

// NewGetTopPodcasts creates the use case.
func NewGetTopPodcasts(deps interfaces.Dependencies, repository Repository, cacheTTL time.Duration) *GetTopPodcasts {
	return &GetTopPodcasts{
		deps:       deps,
		repository: repository,
		cacheTTL:   cacheTTL,
	}
}

// Execute returns the top-podcasts listing. A live cache entry
// short-circuits the repository entirely; an expired one is evicted before
// the fetch. Concurrent misses share one repository call.
func (uc *GetTopPodcasts) Execute(ctx context.Context) ([]PodcastListDTO, error) {
	result, err, _ := uc.group.Do(TopPodcastsCacheKey, func() (interface{}, error) {
		if cached := uc.cachedPodcasts(ctx); cached != nil {
			return cached, nil
		}

		podcasts, err := uc.repository.GetTopPodcasts(ctx)
		if err != nil {
			return nil, err
		}

		dtos := make([]PodcastListDTO, 0, len(podcasts))
		for _, podcast := range podcasts {
			dtos = append(dtos, newPodcastListDTO(podcast))
		}

		uc.writeCache(ctx, dtos)

		return dtos, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]PodcastListDTO), nil
}

// cachedPodcasts returns the cached listing, or nil on miss, expiry or
// corruption. Expired entries are actively evicted so a stale value never
// reaches any caller path.
func (uc *GetTopPodcasts) cachedPodcasts(ctx context.Context) []PodcastListDTO {
	if uc.deps.Cache == nil {
		return nil
	}

	if uc.deps.Cache.IsExpired(ctx, TopPodcastsCacheKey) {
		_ = uc.deps.Cache.Clear(ctx, TopPodcastsCacheKey)
		return nil
	}

	data, err := uc.deps.Cache.Get(ctx, TopPodcastsCacheKey)
	if err != nil || data == nil {
		return nil
	}

	var dtos []PodcastListDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		uc.warn("Discarding corrupt cache entry", TopPodcastsCacheKey, err)
		return nil
	}

	return dtos
}

// writeCache stores the listing. Cache failures degrade to a warning; they
// never fail a call that succeeded via the network.
func (uc *GetTopPodcasts) writeCache(ctx context.Context, dtos []PodcastListDTO) {
	if uc.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(dtos)
	if err != nil {
		uc.warn("Failed to serialize cache entry", TopPodcastsCacheKey, err)
		return
	}

	if err := uc.deps.Cache.Set(ctx, TopPodcastsCacheKey, data, uc.cacheTTL); err != nil {
		uc.warn("Failed to write cache entry", TopPodcastsCacheKey, err)
	}
}

func (uc *GetTopPodcasts) warn(msg, key string, err error) {
	if uc.deps.Logger == nil {
		return
	}
	uc.deps.Logger.Warn(msg, map[string]interface{}{
		"key":   key,
		"error": err.Error(),
	})
}

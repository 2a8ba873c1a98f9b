// ABOUTME: GetPodcastDetails use case: cached podcast metadata plus episodes
// ABOUTME: Validates the id before any cache interaction and on every path

package podcast

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"

	"podcasts-app-api/core/domain"
	"podcasts-app-api/core/errors"
	"podcasts-app-api/core/interfaces"
)

const podcastDetailKeyPrefix = "podcast_detail_"

// GetPodcastDetails serves one podcast's metadata and episode list.
type GetPodcastDetails struct {
	deps       interfaces.Dependencies
	repository Repository
	cacheTTL   time.Duration
	group      singleflight.Group
}

// NewGetPodcastDetails creates the use case.
func NewGetPodcastDetails(deps interfaces.Dependencies, repository Repository, cacheTTL time.Duration) *GetPodcastDetails {
	return &GetPodcastDetails{
		deps:       deps,
		repository: repository,
		cacheTTL:   cacheTTL,
	}
}

// Execute returns the detail DTO for podcastID. A malformed id fails with
// InvalidIDError before the cache key is ever built; an unknown id fails
// with PodcastNotFoundError and writes nothing to the cache.
func (uc *GetPodcastDetails) Execute(ctx context.Context, podcastID string) (*PodcastDetailDTO, error) {
	id, err := domain.NewPodcastID(podcastID)
	if err != nil {
		return nil, err
	}

	cacheKey := podcastDetailKeyPrefix + id.Value()

	result, err, _ := uc.group.Do(cacheKey, func() (interface{}, error) {
		if cached := uc.cachedDetail(ctx, cacheKey); cached != nil {
			return cached, nil
		}

		podcast, err := uc.repository.GetPodcastByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if podcast == nil {
			return nil, &errors.PodcastNotFoundError{ID: id.Value()}
		}

		episodes, err := uc.repository.GetEpisodesByPodcastID(ctx, id)
		if err != nil {
			return nil, err
		}

		detail := &PodcastDetailDTO{
			PodcastListDTO: newPodcastListDTO(podcast),
			EpisodeCount:   len(episodes),
			Episodes:       newEpisodeDTOs(episodes),
		}

		uc.writeCache(ctx, cacheKey, detail)

		return detail, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*PodcastDetailDTO), nil
}

func (uc *GetPodcastDetails) cachedDetail(ctx context.Context, cacheKey string) *PodcastDetailDTO {
	if uc.deps.Cache == nil {
		return nil
	}

	if uc.deps.Cache.IsExpired(ctx, cacheKey) {
		_ = uc.deps.Cache.Clear(ctx, cacheKey)
		return nil
	}

	data, err := uc.deps.Cache.Get(ctx, cacheKey)
	if err != nil || data == nil {
		return nil
	}

	var detail PodcastDetailDTO
	if err := json.Unmarshal(data, &detail); err != nil {
		uc.warn("Discarding corrupt cache entry", cacheKey, err)
		return nil
	}

	return &detail
}

func (uc *GetPodcastDetails) writeCache(ctx context.Context, cacheKey string, detail *PodcastDetailDTO) {
	if uc.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(detail)
	if err != nil {
		uc.warn("Failed to serialize cache entry", cacheKey, err)
		return
	}

	if err := uc.deps.Cache.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
		uc.warn("Failed to write cache entry", cacheKey, err)
	}
}

func (uc *GetPodcastDetails) warn(msg, key string, err error) {
	if uc.deps.Logger == nil {
		return
	}
	uc.deps.Logger.Warn(msg, map[string]interface{}{
		"key":   key,
		"error": err.Error(),
	})
}

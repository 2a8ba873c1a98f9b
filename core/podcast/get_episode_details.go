// ABOUTME: GetEpisodeDetails use case resolving one episode within a podcast
// ABOUTME: Uncached; missing records fail with typed not-found errors

package podcast

import (
	"context"

	"podcasts-app-api/core/domain"
	"podcasts-app-api/core/errors"
)

// GetEpisodeDetails serves a single episode. The podcast's existence is
// verified first, so an unknown podcast and an unknown episode surface as
// distinct errors.
type GetEpisodeDetails struct {
	repository Repository
}

// NewGetEpisodeDetails creates the use case.
func NewGetEpisodeDetails(repository Repository) *GetEpisodeDetails {
	return &GetEpisodeDetails{
		repository: repository,
	}
}

// Execute returns the episode DTO, failing with InvalidIDError,
// PodcastNotFoundError or EpisodeNotFoundError. It never returns nil
// without an error.
func (uc *GetEpisodeDetails) Execute(ctx context.Context, episodeID, podcastID string) (*EpisodeDTO, error) {
	id, err := domain.NewPodcastID(podcastID)
	if err != nil {
		return nil, err
	}

	podcast, err := uc.repository.GetPodcastByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if podcast == nil {
		return nil, &errors.PodcastNotFoundError{ID: id.Value()}
	}

	episode, err := uc.repository.GetEpisodeByID(ctx, episodeID, id)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, &errors.EpisodeNotFoundError{EpisodeID: episodeID, PodcastID: id.Value()}
	}

	dto := newEpisodeDTO(episode)
	return &dto, nil
}

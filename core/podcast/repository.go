// ABOUTME: Repository port consumed by the podcast use cases
// ABOUTME: Implemented by core/catalog; test doubles live in mocks_test.go

package podcast

import (
	"context"

	"podcasts-app-api/core/domain"
)

// Repository defines the catalog lookups the use cases depend on.
type Repository interface {
	// GetTopPodcasts returns the current top-podcasts listing.
	GetTopPodcasts(ctx context.Context) ([]*domain.Podcast, error)

	// GetPodcastByID returns the podcast metadata, or nil, nil when the
	// catalog has no record for the id.
	GetPodcastByID(ctx context.Context, id domain.PodcastID) (*domain.Podcast, error)

	// GetEpisodesByPodcastID returns the podcast's episode list.
	GetEpisodesByPodcastID(ctx context.Context, id domain.PodcastID) ([]*domain.Episode, error)

	// GetEpisodeByID returns one episode, or nil, nil when no episode in
	// the podcast matches.
	GetEpisodeByID(ctx context.Context, episodeID string, podcastID domain.PodcastID) (*domain.Episode, error)
}

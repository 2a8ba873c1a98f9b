// ABOUTME: Application service facade over the three podcast use cases
// ABOUTME: Adds client-side filtering; everything else is pure delegation

package podcast

import (
	"context"
	"strings"
)

// Service is the surface the presentation layer consumes.
type Service struct {
	getTopPodcasts    *GetTopPodcasts
	getPodcastDetails *GetPodcastDetails
	getEpisodeDetails *GetEpisodeDetails
}

// NewService wires the facade from its use cases.
func NewService(
	getTopPodcasts *GetTopPodcasts,
	getPodcastDetails *GetPodcastDetails,
	getEpisodeDetails *GetEpisodeDetails,
) *Service {
	return &Service{
		getTopPodcasts:    getTopPodcasts,
		getPodcastDetails: getPodcastDetails,
		getEpisodeDetails: getEpisodeDetails,
	}
}

// GetTopPodcasts returns the top-podcasts listing.
func (s *Service) GetTopPodcasts(ctx context.Context) ([]PodcastListDTO, error) {
	return s.getTopPodcasts.Execute(ctx)
}

// GetPodcastDetails returns one podcast's metadata and episodes.
func (s *Service) GetPodcastDetails(ctx context.Context, podcastID string) (*PodcastDetailDTO, error) {
	return s.getPodcastDetails.Execute(ctx, podcastID)
}

// GetEpisodeDetails returns one episode of a podcast.
func (s *Service) GetEpisodeDetails(ctx context.Context, episodeID, podcastID string) (*EpisodeDTO, error) {
	return s.getEpisodeDetails.Execute(ctx, episodeID, podcastID)
}

// FilterPodcasts returns the podcasts whose title or author contains the
// search term, case-insensitively. A blank term returns the input
// unchanged.
func (s *Service) FilterPodcasts(podcasts []PodcastListDTO, searchTerm string) []PodcastListDTO {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return podcasts
	}

	filtered := make([]PodcastListDTO, 0)
	for _, p := range podcasts {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Author), term) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

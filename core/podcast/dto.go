// ABOUTME: Flat serializable DTOs crossing the use-case boundary
// ABOUTME: Carry no behavior; these are also the cached representations

package podcast

import "podcasts-app-api/core/domain"

// PodcastListDTO is one row of the top-podcasts listing.
type PodcastListDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// PodcastDetailDTO extends the listing row with the episode list.
type PodcastDetailDTO struct {
	PodcastListDTO
	EpisodeCount int          `json:"episodeCount"`
	Episodes     []EpisodeDTO `json:"episodes"`
}

// EpisodeDTO is a single episode. Duration is carried both as raw seconds
// and as a preformatted display string.
type EpisodeDTO struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	AudioURL        string `json:"audioUrl,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	Duration        string `json:"duration"`
	PublishedAt     string `json:"publishedAt"`
	PodcastID       string `json:"podcastId"`
}

func newPodcastListDTO(p *domain.Podcast) PodcastListDTO {
	return PodcastListDTO{
		ID:          p.ID().Value(),
		Title:       p.Title(),
		Author:      p.Author(),
		Image:       p.BestImageURL(),
		Description: p.Description(),
	}
}

func newEpisodeDTO(e *domain.Episode) EpisodeDTO {
	return EpisodeDTO{
		ID:              e.ID(),
		Title:           e.Title(),
		Description:     e.Description(),
		AudioURL:        e.AudioURL(),
		DurationSeconds: e.DurationSeconds(),
		Duration:        e.FormattedDuration(),
		PublishedAt:     e.FormattedDate(),
		PodcastID:       e.PodcastID().Value(),
	}
}

func newEpisodeDTOs(episodes []*domain.Episode) []EpisodeDTO {
	dtos := make([]EpisodeDTO, 0, len(episodes))
	for _, episode := range episodes {
		dtos = append(dtos, newEpisodeDTO(episode))
	}
	return dtos
}

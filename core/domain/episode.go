// ABOUTME: Episode entity with audio, duration and publish-date helpers
// ABOUTME: Optional fields normalize to their absent form instead of failing

package domain

import (
	"fmt"
	"strings"
	"time"

	"podcasts-app-api/pkg/timeutil"
)

// DurationPlaceholder is rendered when an episode has no known duration.
const DurationPlaceholder = "--:--"

// datePlaceholder is rendered when the release date could not be parsed.
const datePlaceholder = "--/--/----"

// EpisodeData carries raw input for the Episode factory.
type EpisodeData struct {
	ID          string
	Title       string
	Description string
	AudioURL    string
	// DurationSeconds is the episode length in whole seconds; zero or
	// negative means unknown.
	DurationSeconds int
	// PublishedAt is the raw release timestamp from the catalog.
	PublishedAt string
	PodcastID   string
}

// Episode represents a single episode of a podcast.
type Episode struct {
	id          string
	title       string
	description string
	audioURL    string
	duration    int
	publishedAt time.Time
	podcastID   PodcastID
}

// NewEpisode creates an Episode from raw data. The podcast id is validated,
// strings are trimmed, a non-positive duration is dropped, and an
// unparseable release date is tolerated as the zero time.
func NewEpisode(data EpisodeData) (*Episode, error) {
	podcastID, err := NewPodcastID(data.PodcastID)
	if err != nil {
		return nil, err
	}

	duration := data.DurationSeconds
	if duration < 0 {
		duration = 0
	}

	return &Episode{
		id:          strings.TrimSpace(data.ID),
		title:       strings.TrimSpace(data.Title),
		description: strings.TrimSpace(data.Description),
		audioURL:    strings.TrimSpace(data.AudioURL),
		duration:    duration,
		publishedAt: timeutil.ParseFlexible(data.PublishedAt),
		podcastID:   podcastID,
	}, nil
}

// ID returns the episode identifier.
func (e *Episode) ID() string {
	return e.id
}

// Title returns the episode title.
func (e *Episode) Title() string {
	return e.title
}

// Description returns the episode description.
func (e *Episode) Description() string {
	return e.description
}

// AudioURL returns the playable audio URL, or "" when none exists.
func (e *Episode) AudioURL() string {
	return e.audioURL
}

// DurationSeconds returns the episode length in seconds, 0 when unknown.
func (e *Episode) DurationSeconds() int {
	return e.duration
}

// PublishedAt returns the parsed release date; zero when unparseable.
func (e *Episode) PublishedAt() time.Time {
	return e.publishedAt
}

// PodcastID returns the owning podcast identifier.
func (e *Episode) PodcastID() PodcastID {
	return e.podcastID
}

// HasAudio reports whether the episode carries a playable audio URL.
func (e *Episode) HasAudio() bool {
	return e.audioURL != ""
}

// FormattedDuration renders the duration as H:MM:SS when at least an hour
// long, M:SS otherwise, or the placeholder when unknown.
func (e *Episode) FormattedDuration() string {
	if e.duration <= 0 {
		return DurationPlaceholder
	}

	hours := e.duration / 3600
	minutes := (e.duration % 3600) / 60
	seconds := e.duration % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormattedDate renders the release date as DD/MM/YYYY, or a placeholder
// when the date never parsed.
func (e *Episode) FormattedDate() string {
	if e.publishedAt.IsZero() {
		return datePlaceholder
	}
	return e.publishedAt.Format("02/01/2006")
}

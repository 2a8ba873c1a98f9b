// ABOUTME: Podcast entity with validation and presentation helpers
// ABOUTME: Immutable after creation; a changed podcast is a new instance

package domain

import "strings"

// lowResMarker is the artwork size segment the catalog serves for list
// thumbnails; BestImageURL upgrades it to the 600px variant.
const (
	lowResMarker  = "55x55bb"
	highResMarker = "600x600bb"
)

// PodcastData carries raw input for the Podcast factory.
type PodcastData struct {
	ID           string
	Title        string
	Author       string
	Description  string
	Image        string
	EpisodeCount int
}

// Podcast represents a podcast from the directory catalog.
type Podcast struct {
	id           PodcastID
	title        string
	author       string
	description  string
	image        string
	episodeCount int
}

// NewPodcast creates a Podcast from raw data, validating the id and
// trimming all string fields. An absent episode count defaults to 0.
func NewPodcast(data PodcastData) (*Podcast, error) {
	id, err := NewPodcastID(data.ID)
	if err != nil {
		return nil, err
	}

	return &Podcast{
		id:           id,
		title:        strings.TrimSpace(data.Title),
		author:       strings.TrimSpace(data.Author),
		description:  strings.TrimSpace(data.Description),
		image:        strings.TrimSpace(data.Image),
		episodeCount: data.EpisodeCount,
	}, nil
}

// ID returns the podcast identifier.
func (p *Podcast) ID() PodcastID {
	return p.id
}

// Title returns the podcast title.
func (p *Podcast) Title() string {
	return p.title
}

// Author returns the podcast author.
func (p *Podcast) Author() string {
	return p.author
}

// Description returns the podcast description.
func (p *Podcast) Description() string {
	return p.description
}

// Image returns the artwork URL exactly as the catalog supplied it.
func (p *Podcast) Image() string {
	return p.image
}

// EpisodeCount returns the number of known episodes.
func (p *Podcast) EpisodeCount() int {
	return p.episodeCount
}

// BestImageURL substitutes the low-resolution artwork marker with the
// high-resolution one. URLs without the marker are returned unchanged.
func (p *Podcast) BestImageURL() string {
	return strings.Replace(p.image, lowResMarker, highResMarker, 1)
}

// Matches reports whether the podcast title or author contains the search
// term, case-insensitively. An empty term matches everything.
func (p *Podcast) Matches(searchTerm string) bool {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.title), term) ||
		strings.Contains(strings.ToLower(p.author), term)
}

// DisplayName returns the title and author joined for display.
func (p *Podcast) DisplayName() string {
	return p.title + " - " + p.author
}

// ABOUTME: Maps the directory API's raw JSON shapes into domain entities
// ABOUTME: Tolerates missing optional fields; only id validation can fail it

package catalog

import (
	"strconv"
	"time"

	"podcasts-app-api/core/domain"
)

// TopPodcastsResponse is the raw shape of the top-podcasts feed endpoint.
type TopPodcastsResponse struct {
	Feed struct {
		Entry []TopPodcastEntry `json:"entry"`
	} `json:"feed"`
}

// TopPodcastEntry is one podcast in the top-podcasts feed. The catalog
// wraps every scalar in a label object.
type TopPodcastEntry struct {
	ID struct {
		Attributes struct {
			IMID string `json:"im:id"`
		} `json:"attributes"`
	} `json:"id"`
	Name    Label        `json:"im:name"`
	Artist  Label        `json:"im:artist"`
	Images  []ImageEntry `json:"im:image"`
	Summary *Label       `json:"summary"`
}

// Label is the catalog's {"label": "..."} wrapper.
type Label struct {
	Label string `json:"label"`
}

// ImageEntry is an artwork variant with an advertised pixel height.
type ImageEntry struct {
	Label      string `json:"label"`
	Attributes struct {
		Height string `json:"height"`
	} `json:"attributes"`
}

// LookupResponse is the raw shape of the lookup endpoint: one podcast
// summary record mixed with zero or more episode records.
type LookupResponse struct {
	Results []LookupResult `json:"results"`
}

// LookupResult is a single heterogeneous lookup record. Records without a
// kind marker (or kind "podcast") describe the podcast; records with kind
// "podcast-episode" describe episodes.
type LookupResult struct {
	Kind                   string `json:"kind"`
	CollectionName         string `json:"collectionName"`
	CollectionCensoredName string `json:"collectionCensoredName"`
	ArtistName             string `json:"artistName"`
	Description            string `json:"description"`
	ArtworkURL600          string `json:"artworkUrl600"`
	TrackID                int64  `json:"trackId"`
	TrackName              string `json:"trackName"`
	TrackTimeMillis        int64  `json:"trackTimeMillis"`
	ReleaseDate            string `json:"releaseDate"`
	EpisodeURL             string `json:"episodeUrl"`
}

const episodeKind = "podcast-episode"

// MapTopPodcastsResponse converts the top-podcasts feed into Podcast
// entities. A missing summary maps to an empty description.
func MapTopPodcastsResponse(resp *TopPodcastsResponse) ([]*domain.Podcast, error) {
	podcasts := make([]*domain.Podcast, 0, len(resp.Feed.Entry))

	for _, entry := range resp.Feed.Entry {
		description := ""
		if entry.Summary != nil {
			description = entry.Summary.Label
		}

		podcast, err := domain.NewPodcast(domain.PodcastData{
			ID:          entry.ID.Attributes.IMID,
			Title:       entry.Name.Label,
			Author:      entry.Artist.Label,
			Description: description,
			Image:       bestImageURL(entry.Images),
		})
		if err != nil {
			return nil, err
		}

		podcasts = append(podcasts, podcast)
	}

	return podcasts, nil
}

// MapLookupResponse converts a lookup response into the podcast and its
// episodes. Empty results yield (nil, empty slice, nil).
func MapLookupResponse(resp *LookupResponse, podcastID domain.PodcastID) (*domain.Podcast, []*domain.Episode, error) {
	episodes := make([]*domain.Episode, 0, len(resp.Results))
	var podcastResult *LookupResult

	for i := range resp.Results {
		result := &resp.Results[i]

		if result.Kind == episodeKind {
			episode, err := mapEpisode(result, podcastID)
			if err != nil {
				return nil, nil, err
			}
			episodes = append(episodes, episode)
			continue
		}

		if podcastResult == nil && (result.Kind == "" || result.Kind == "podcast") {
			podcastResult = result
		}
	}

	var podcast *domain.Podcast
	if podcastResult != nil {
		title := podcastResult.CollectionName
		if title == "" {
			title = podcastResult.CollectionCensoredName
		}

		var err error
		podcast, err = domain.NewPodcast(domain.PodcastData{
			ID:           podcastID.Value(),
			Title:        title,
			Author:       podcastResult.ArtistName,
			Description:  podcastResult.Description,
			Image:        podcastResult.ArtworkURL600,
			EpisodeCount: len(episodes),
		})
		if err != nil {
			return nil, nil, err
		}
	}

	return podcast, episodes, nil
}

func mapEpisode(result *LookupResult, podcastID domain.PodcastID) (*domain.Episode, error) {
	id := ""
	if result.TrackID != 0 {
		id = strconv.FormatInt(result.TrackID, 10)
	}

	duration := 0
	if result.TrackTimeMillis > 0 {
		duration = int(result.TrackTimeMillis / 1000)
	}

	// The catalog occasionally omits releaseDate; fall back to now like a
	// fresh publication rather than rendering a placeholder.
	releaseDate := result.ReleaseDate
	if releaseDate == "" {
		releaseDate = time.Now().UTC().Format(time.RFC3339)
	}

	return domain.NewEpisode(domain.EpisodeData{
		ID:              id,
		Title:           result.TrackName,
		Description:     result.Description,
		AudioURL:        result.EpisodeURL,
		DurationSeconds: duration,
		PublishedAt:     releaseDate,
		PodcastID:       podcastID.Value(),
	})
}

// bestImageURL picks the artwork variant with the greatest advertised
// height, falling back to the last array element when no height parses.
func bestImageURL(images []ImageEntry) string {
	if len(images) == 0 {
		return ""
	}

	best := ""
	bestHeight := -1
	for _, img := range images {
		height, err := strconv.Atoi(img.Attributes.Height)
		if err != nil {
			continue
		}
		if height > bestHeight {
			bestHeight = height
			best = img.Label
		}
	}

	if best == "" {
		return images[len(images)-1].Label
	}
	return best
}

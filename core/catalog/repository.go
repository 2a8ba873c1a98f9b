// ABOUTME: Catalog repository fetching top-podcasts and lookup data over HTTP
// ABOUTME: Stateless; caching is the use-case layer's responsibility

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"podcasts-app-api/core/domain"
	coreerrors "podcasts-app-api/core/errors"
	"podcasts-app-api/core/interfaces"
)

// Config holds the catalog endpoints and lookup parameters.
type Config struct {
	// TopPodcastsURL is the full top-podcasts feed URL.
	TopPodcastsURL string

	// LookupURL is the lookup endpoint base, without query parameters.
	LookupURL string

	// EpisodeLimit caps the number of episode records per lookup.
	EpisodeLimit int
}

// Repository fetches podcast data from the remote directory API.
//
// A single lookup call yields both the podcast metadata and its episode
// list, so GetPodcastByID and GetEpisodesByPodcastID trigger the same
// fetch. There is no dedicated single-episode endpoint upstream;
// GetEpisodeByID scans the episode list.
type Repository struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewRepository creates a catalog repository.
func NewRepository(deps interfaces.Dependencies, cfg Config) *Repository {
	return &Repository{
		deps: deps,
		cfg:  cfg,
	}
}

// GetTopPodcasts fetches the top-podcasts feed and maps it to entities.
func (r *Repository) GetTopPodcasts(ctx context.Context) ([]*domain.Podcast, error) {
	var resp TopPodcastsResponse
	if err := r.fetchJSON(ctx, r.cfg.TopPodcastsURL, &resp); err != nil {
		return nil, err
	}

	return MapTopPodcastsResponse(&resp)
}

// GetPodcastByID fetches the podcast metadata for id.
// Returns nil, nil when the catalog has no record for it.
func (r *Repository) GetPodcastByID(ctx context.Context, id domain.PodcastID) (*domain.Podcast, error) {
	podcast, _, err := r.lookup(ctx, id)
	return podcast, err
}

// GetEpisodesByPodcastID fetches the episode list for a podcast.
func (r *Repository) GetEpisodesByPodcastID(ctx context.Context, id domain.PodcastID) ([]*domain.Episode, error) {
	_, episodes, err := r.lookup(ctx, id)
	return episodes, err
}

// GetEpisodeByID fetches the podcast's episode list and scans it for the
// given episode id. Returns nil, nil when no episode matches.
func (r *Repository) GetEpisodeByID(ctx context.Context, episodeID string, podcastID domain.PodcastID) (*domain.Episode, error) {
	episodes, err := r.GetEpisodesByPodcastID(ctx, podcastID)
	if err != nil {
		return nil, err
	}

	for _, episode := range episodes {
		if episode.ID() == episodeID {
			return episode, nil
		}
	}

	return nil, nil
}

// lookup performs the combined podcast+episodes fetch.
func (r *Repository) lookup(ctx context.Context, id domain.PodcastID) (*domain.Podcast, []*domain.Episode, error) {
	var resp LookupResponse
	if err := r.fetchJSON(ctx, r.lookupURL(id), &resp); err != nil {
		return nil, nil, err
	}

	return MapLookupResponse(&resp, id)
}

// lookupURL builds the lookup query for a podcast id.
func (r *Repository) lookupURL(id domain.PodcastID) string {
	query := url.Values{}
	query.Set("id", id.Value())
	query.Set("media", "podcast")
	query.Set("entity", "podcastEpisode")
	query.Set("limit", strconv.Itoa(r.cfg.EpisodeLimit))

	return r.cfg.LookupURL + "?" + query.Encode()
}

// fetchJSON performs a GET and decodes the JSON body into out.
// Transport errors propagate unmodified; non-2xx statuses become
// ExternalAPIError. No retries here.
func (r *Repository) fetchJSON(ctx context.Context, requestURL string, out interface{}) error {
	if r.deps.HTTPClient == nil {
		return errors.New("HTTP client not configured")
	}

	resp, err := r.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			API:        "catalog",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return fmt.Errorf("failed to read catalog response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse catalog response: %w", err)
	}

	return nil
}

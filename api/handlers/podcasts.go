// ABOUTME: Podcast handlers for the Huma API
// ABOUTME: Exposes top-podcasts listing, podcast detail and episode detail endpoints

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"podcasts-app-api/core/podcast"
)

// PodcastService interface defines the methods needed from the application service
type PodcastService interface {
	GetTopPodcasts(ctx context.Context) ([]podcast.PodcastListDTO, error)
	GetPodcastDetails(ctx context.Context, podcastID string) (*podcast.PodcastDetailDTO, error)
	GetEpisodeDetails(ctx context.Context, episodeID, podcastID string) (*podcast.EpisodeDTO, error)
	FilterPodcasts(podcasts []podcast.PodcastListDTO, searchTerm string) []podcast.PodcastListDTO
}

// PodcastHandler handles podcast-related HTTP requests
type PodcastHandler struct {
	service PodcastService
}

// NewPodcastHandler creates a new podcast handler
func NewPodcastHandler(service PodcastService) *PodcastHandler {
	return &PodcastHandler{
		service: service,
	}
}

// RegisterRoutes registers all podcast-related routes
func (h *PodcastHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listTopPodcasts",
		Method:      http.MethodGet,
		Path:        "/podcasts",
		Summary:     "List top podcasts",
		Description: "Returns the top-podcasts directory listing, optionally filtered by a search term",
		Tags:        []string{"Podcasts"},
	}, h.ListTopPodcasts)

	huma.Register(api, huma.Operation{
		OperationID: "getPodcastDetails",
		Method:      http.MethodGet,
		Path:        "/podcasts/{podcastId}",
		Summary:     "Get podcast details",
		Description: "Returns one podcast's metadata together with its episode list",
		Tags:        []string{"Podcasts"},
	}, h.GetPodcastDetails)

	huma.Register(api, huma.Operation{
		OperationID: "getEpisodeDetails",
		Method:      http.MethodGet,
		Path:        "/podcasts/{podcastId}/episodes/{episodeId}",
		Summary:     "Get episode details",
		Description: "Returns a single episode of a podcast",
		Tags:        []string{"Episodes"},
	}, h.GetEpisodeDetails)
}

// PodcastListResponse wraps the top-podcasts listing
type PodcastListResponse struct {
	Podcasts []podcast.PodcastListDTO `json:"podcasts"`
	Count    int                      `json:"count"`
}

// ListTopPodcastsInput defines the input for the ListTopPodcasts operation
type ListTopPodcastsInput struct {
	Search string `query:"search" doc:"Case-insensitive match against podcast title or author"`
}

// ListTopPodcastsOutput defines the output for the ListTopPodcasts operation
type ListTopPodcastsOutput struct {
	Body PodcastListResponse
}

// ListTopPodcasts handles the GET /podcasts endpoint
func (h *PodcastHandler) ListTopPodcasts(ctx context.Context, input *ListTopPodcastsInput) (*ListTopPodcastsOutput, error) {
	podcasts, err := h.service.GetTopPodcasts(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	podcasts = h.service.FilterPodcasts(podcasts, input.Search)

	return &ListTopPodcastsOutput{
		Body: PodcastListResponse{
			Podcasts: podcasts,
			Count:    len(podcasts),
		},
	}, nil
}

// GetPodcastDetailsInput defines the input for the GetPodcastDetails operation
type GetPodcastDetailsInput struct {
	PodcastID string `path:"podcastId" example:"1535809341"`
}

// GetPodcastDetailsOutput defines the output for the GetPodcastDetails operation
type GetPodcastDetailsOutput struct {
	Body podcast.PodcastDetailDTO
}

// GetPodcastDetails handles the GET /podcasts/{podcastId} endpoint
func (h *PodcastHandler) GetPodcastDetails(ctx context.Context, input *GetPodcastDetailsInput) (*GetPodcastDetailsOutput, error) {
	detail, err := h.service.GetPodcastDetails(ctx, input.PodcastID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetPodcastDetailsOutput{Body: *detail}, nil
}

// GetEpisodeDetailsInput defines the input for the GetEpisodeDetails operation
type GetEpisodeDetailsInput struct {
	PodcastID string `path:"podcastId" example:"1535809341"`
	EpisodeID string `path:"episodeId" example:"1000684306925"`
}

// GetEpisodeDetailsOutput defines the output for the GetEpisodeDetails operation
type GetEpisodeDetailsOutput struct {
	Body podcast.EpisodeDTO
}

// GetEpisodeDetails handles the GET /podcasts/{podcastId}/episodes/{episodeId} endpoint
func (h *PodcastHandler) GetEpisodeDetails(ctx context.Context, input *GetEpisodeDetailsInput) (*GetEpisodeDetailsOutput, error) {
	episode, err := h.service.GetEpisodeDetails(ctx, input.EpisodeID, input.PodcastID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetEpisodeDetailsOutput{Body: *episode}, nil
}

// ABOUTME: Hand-rolled test doubles for the podcast use-case tests
// ABOUTME: Function-field mocks so each test configures only what it needs

package podcast

import (
	"context"
	"sync"
	"testing"
	"time"

	"podcasts-app-api/core/domain"
)

type mockRepository struct {
	getTopPodcastsFunc         func(ctx context.Context) ([]*domain.Podcast, error)
	getPodcastByIDFunc         func(ctx context.Context, id domain.PodcastID) (*domain.Podcast, error)
	getEpisodesByPodcastIDFunc func(ctx context.Context, id domain.PodcastID) ([]*domain.Episode, error)
	getEpisodeByIDFunc         func(ctx context.Context, episodeID string, podcastID domain.PodcastID) (*domain.Episode, error)

	mu                sync.Mutex
	topPodcastsCalls  int
	podcastByIDCalls  int
	episodesByIDCalls int
	episodeByIDCalls  int
}

func (m *mockRepository) GetTopPodcasts(ctx context.Context) ([]*domain.Podcast, error) {
	m.mu.Lock()
	m.topPodcastsCalls++
	m.mu.Unlock()
	if m.getTopPodcastsFunc != nil {
		return m.getTopPodcastsFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) GetPodcastByID(ctx context.Context, id domain.PodcastID) (*domain.Podcast, error) {
	m.mu.Lock()
	m.podcastByIDCalls++
	m.mu.Unlock()
	if m.getPodcastByIDFunc != nil {
		return m.getPodcastByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRepository) GetEpisodesByPodcastID(ctx context.Context, id domain.PodcastID) ([]*domain.Episode, error) {
	m.mu.Lock()
	m.episodesByIDCalls++
	m.mu.Unlock()
	if m.getEpisodesByPodcastIDFunc != nil {
		return m.getEpisodesByPodcastIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRepository) GetEpisodeByID(ctx context.Context, episodeID string, podcastID domain.PodcastID) (*domain.Episode, error) {
	m.mu.Lock()
	m.episodeByIDCalls++
	m.mu.Unlock()
	if m.getEpisodeByIDFunc != nil {
		return m.getEpisodeByIDFunc(ctx, episodeID, podcastID)
	}
	return nil, nil
}

type mockCache struct {
	getFunc       func(ctx context.Context, key string) ([]byte, error)
	setFunc       func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	isExpiredFunc func(ctx context.Context, key string) bool
	clearFunc     func(ctx context.Context, key string) error

	mu         sync.Mutex
	setCalls   int
	clearCalls int
	lastSetKey string
	lastSetTTL time.Duration
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	m.setCalls++
	m.lastSetKey = key
	m.lastSetTTL = ttl
	m.mu.Unlock()
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) IsExpired(ctx context.Context, key string) bool {
	if m.isExpiredFunc != nil {
		return m.isExpiredFunc(ctx, key)
	}
	return true
}

func (m *mockCache) Clear(ctx context.Context, key string) error {
	m.mu.Lock()
	m.clearCalls++
	m.mu.Unlock()
	if m.clearFunc != nil {
		return m.clearFunc(ctx, key)
	}
	return nil
}

type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	m.warnings = append(m.warnings, msg)
	m.mu.Unlock()
}

func mustPodcast(t *testing.T, data domain.PodcastData) *domain.Podcast {
	t.Helper()
	p, err := domain.NewPodcast(data)
	if err != nil {
		t.Fatalf("failed to build podcast fixture: %v", err)
	}
	return p
}

func mustEpisode(t *testing.T, data domain.EpisodeData) *domain.Episode {
	t.Helper()
	e, err := domain.NewEpisode(data)
	if err != nil {
		t.Fatalf("failed to build episode fixture: %v", err)
	}
	return e
}

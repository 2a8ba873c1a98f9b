package domain

import "testing"

func validPodcastData() PodcastData {
	return PodcastData{
		ID:          "123456",
		Title:       "JS Weekly",
		Author:      "A. Author",
		Description: "A show about things",
		Image:       "https://example.com/image55x55bb.jpg",
	}
}

func TestNewPodcast_TrimsFields(t *testing.T) {
	data := validPodcastData()
	data.Title = "  JS Weekly  "
	data.Author = "  A. Author "
	data.Description = " A show about things\n"

	p, err := NewPodcast(data)
	if err != nil {
		t.Fatalf("NewPodcast returned error: %v", err)
	}

	if p.Title() != "JS Weekly" {
		t.Errorf("Title = %q, want trimmed", p.Title())
	}
	if p.Author() != "A. Author" {
		t.Errorf("Author = %q, want trimmed", p.Author())
	}
	if p.Description() != "A show about things" {
		t.Errorf("Description = %q, want trimmed", p.Description())
	}
}

func TestNewPodcast_InvalidID(t *testing.T) {
	data := validPodcastData()
	data.ID = "not-numeric"

	if _, err := NewPodcast(data); err == nil {
		t.Error("NewPodcast should propagate id validation errors")
	}
}

func TestNewPodcast_DefaultEpisodeCount(t *testing.T) {
	p, err := NewPodcast(validPodcastData())
	if err != nil {
		t.Fatalf("NewPodcast returned error: %v", err)
	}

	if p.EpisodeCount() != 0 {
		t.Errorf("EpisodeCount = %d, want 0", p.EpisodeCount())
	}
}

func TestPodcast_BestImageURL_SubstitutesMarker(t *testing.T) {
	p, _ := NewPodcast(validPodcastData())

	want := "https://example.com/image600x600bb.jpg"
	if got := p.BestImageURL(); got != want {
		t.Errorf("BestImageURL = %q, want %q", got, want)
	}
}

func TestPodcast_BestImageURL_NoMarker(t *testing.T) {
	data := validPodcastData()
	data.Image = "https://example.com/cover.jpg"
	p, _ := NewPodcast(data)

	if got := p.BestImageURL(); got != data.Image {
		t.Errorf("BestImageURL = %q, want unchanged %q", got, data.Image)
	}
}

func TestPodcast_Matches(t *testing.T) {
	p, _ := NewPodcast(validPodcastData())

	tests := []struct {
		term string
		want bool
	}{
		{"js", true},
		{"WEEKLY", true},
		{"author", true},
		{"", true},
		{"   ", true},
		{"nomatch", false},
	}

	for _, tt := range tests {
		if got := p.Matches(tt.term); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestPodcast_DisplayName(t *testing.T) {
	p, _ := NewPodcast(validPodcastData())

	want := "JS Weekly - A. Author"
	if got := p.DisplayName(); got != want {
		t.Errorf("DisplayName = %q, want %q", got, want)
	}
}

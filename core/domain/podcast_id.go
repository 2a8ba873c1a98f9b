// ABOUTME: PodcastID value object wrapping a validated catalog identifier
// ABOUTME: Guarantees a non-empty numeric string at every ingress boundary

package domain

import (
	"strconv"
	"strings"

	"podcasts-app-api/core/errors"
)

// PodcastID is an immutable catalog identifier. The zero value is invalid;
// construct one through NewPodcastID.
type PodcastID struct {
	value string
}

// NewPodcastID validates and normalizes a raw identifier.
// The input is trimmed and must be a non-empty string of digits.
func NewPodcastID(raw string) (PodcastID, error) {
	id := strings.TrimSpace(raw)

	if id == "" {
		return PodcastID{}, &errors.InvalidIDError{Value: raw, Reason: "cannot be empty"}
	}

	for _, r := range id {
		if r < '0' || r > '9' {
			return PodcastID{}, &errors.InvalidIDError{Value: raw, Reason: "must be numeric"}
		}
	}

	return PodcastID{value: id}, nil
}

// NewPodcastIDFromInt builds a PodcastID from a numeric catalog id.
func NewPodcastIDFromInt(raw int64) (PodcastID, error) {
	return NewPodcastID(strconv.FormatInt(raw, 10))
}

// Value returns the normalized string form of the identifier.
func (id PodcastID) Value() string {
	return id.value
}

// Equals reports structural equality with another PodcastID.
func (id PodcastID) Equals(other PodcastID) bool {
	return id.value == other.value
}

func (id PodcastID) String() string {
	return id.value
}

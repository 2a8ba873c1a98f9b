// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// InvalidIDError represents a malformed or empty podcast identifier.
type InvalidIDError struct {
	Value  string
	Reason string
}

// Error implements the error interface
func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid podcast id %q: %s", e.Value, e.Reason)
}

// PodcastNotFoundError represents a syntactically valid id with no catalog record.
type PodcastNotFoundError struct {
	ID string
}

// Error implements the error interface
func (e *PodcastNotFoundError) Error() string {
	return fmt.Sprintf("podcast not found: %s", e.ID)
}

// EpisodeNotFoundError represents a missing episode within a known podcast.
// It carries both ids for diagnostic context.
type EpisodeNotFoundError struct {
	EpisodeID string
	PodcastID string
}

// Error implements the error interface
func (e *EpisodeNotFoundError) Error() string {
	if e.PodcastID != "" {
		return fmt.Sprintf("episode not found: %s in podcast %s", e.EpisodeID, e.PodcastID)
	}
	return fmt.Sprintf("episode not found: %s", e.EpisodeID)
}

// ExternalAPIError represents a non-2xx response from the remote catalog API.
type ExternalAPIError struct {
	StatusCode int
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: status %d", e.API, e.StatusCode)
}

// IsInvalidID checks if an error is an InvalidIDError
func IsInvalidID(err error) bool {
	var invalidErr *InvalidIDError
	return errors.As(err, &invalidErr)
}

// IsPodcastNotFound checks if an error is a PodcastNotFoundError
func IsPodcastNotFound(err error) bool {
	var notFoundErr *PodcastNotFoundError
	return errors.As(err, &notFoundErr)
}

// IsEpisodeNotFound checks if an error is an EpisodeNotFoundError
func IsEpisodeNotFound(err error) bool {
	var notFoundErr *EpisodeNotFoundError
	return errors.As(err, &notFoundErr)
}

// IsNotFound checks if an error is any of the not-found error types
func IsNotFound(err error) bool {
	return IsPodcastNotFound(err) || IsEpisodeNotFound(err)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

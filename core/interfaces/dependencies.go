// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Built once in the composition root and passed down explicitly

package interfaces

// Dependencies holds all external dependencies required by the core business logic.
type Dependencies struct {
	// Cache provides TTL-based caching
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}

// ABOUTME: Logger port for structured logging throughout the application
// ABOUTME: Keeps the core independent of the concrete logging library

package interfaces

// Logger defines the interface for logging throughout the application.
//
// Example usage:
//
//	logger.Warn("Failed to write cache", map[string]interface{}{
//		"key":   "top_podcasts",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}

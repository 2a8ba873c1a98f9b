// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Emits JSON-structured log lines with level support

package logrus

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger implements the interfaces.Logger port on top of logrus.
type Logger struct {
	logger *log.Logger
}

// NewLogger creates a JSON-formatted logrus logger writing to stdout.
func NewLogger(level string) *Logger {
	l := log.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&log.JSONFormatter{})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	l.SetLevel(parsed)

	return &Logger{logger: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *Logger) entry(fields map[string]interface{}) *log.Entry {
	if len(fields) == 0 {
		return log.NewEntry(l.logger)
	}
	return l.logger.WithFields(log.Fields(fields))
}

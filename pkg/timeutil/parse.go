// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the timestamp formats the catalog API has been seen to serve

package timeutil

import (
	"strings"
	"time"
)

// Formats observed in catalog release dates, most common first.
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseFlexible attempts to parse a time string using various formats.
// Returns the zero time when nothing matches.
func ParseFlexible(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

package repository

import (
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// parseTimestamp parses a stored RFC3339 timestamp, returning the zero time
// when the column holds something else.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

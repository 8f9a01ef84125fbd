package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
)

// A field is accepted whole or not at all: dropping single bad entries would
// make the next push delete them remotely.

func decodeLessons(raw json.RawMessage) ([]domain.Lesson, bool, error) {
	items, present, err := splitArray(raw)
	if err != nil || !present {
		return nil, present, err
	}
	lessons := make([]domain.Lesson, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		var l domain.Lesson
		if err := decodeObject(item, &l); err != nil {
			return nil, true, fmt.Errorf("entry %d: %w", i, err)
		}
		l.Date = normalizeDate(l.Date)
		if err := l.Validate(); err != nil {
			return nil, true, fmt.Errorf("entry %d: %w", i, err)
		}
		if seen[l.ID] {
			return nil, true, fmt.Errorf("entry %d: duplicate id %q", i, l.ID)
		}
		seen[l.ID] = true
		lessons = append(lessons, l)
	}
	return lessons, true, nil
}

// normalizeDate trims a full timestamp such as "2026-01-20T03:00:00.000Z",
// which spreadsheets emit for date cells, to its calendar-date prefix.
// Anything else is returned unchanged for Validate to judge.
func normalizeDate(s string) string {
	n := len(domain.DateLayout)
	if len(s) <= n || s[n] != 'T' {
		return s
	}
	if _, err := time.Parse(time.RFC3339, s); err != nil {
		return s
	}
	return s[:n]
}

func decodeUnits(raw json.RawMessage) ([]domain.Unit, bool, error) {
	items, present, err := splitArray(raw)
	if err != nil || !present {
		return nil, present, err
	}
	units := make([]domain.Unit, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		var u domain.Unit
		if err := decodeObject(item, &u); err != nil {
			return nil, true, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := u.Validate(); err != nil {
			return nil, true, fmt.Errorf("entry %d: %w", i, err)
		}
		if seen[u.ID] {
			return nil, true, fmt.Errorf("entry %d: duplicate id %q", i, u.ID)
		}
		seen[u.ID] = true
		units = append(units, u)
	}
	return units, true, nil
}

// splitArray reports present=false for a missing or null field.
func splitArray(raw json.RawMessage) ([]json.RawMessage, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false, nil
	}
	if trimmed[0] != '[' {
		return nil, true, fmt.Errorf("not an array")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, true, err
	}
	return items, true, nil
}

func decodeObject(item json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("not an object")
	}
	return json.Unmarshal(trimmed, out)
}

// Package scheduler ranks lessons that still need preparation so the next
// one to work on comes first.
package scheduler

import "time"

// Urgency classifies how close a lesson is to its date.
type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"  // dated in the past and not delivered
	UrgencyDueSoon Urgency = "due_soon" // within DueSoonDays
	UrgencyOnTrack Urgency = "on_track"
)

// DueSoonDays is the window in which a lesson still to prepare counts as
// due soon.
const DueSoonDays = 3

// UrgencyPriority returns a sort priority (lower = more urgent).
func UrgencyPriority(u Urgency) int {
	switch u {
	case UrgencyOverdue:
		return 0
	case UrgencyDueSoon:
		return 1
	default:
		return 2
	}
}

// daysUntil counts calendar days from today to day. Both are compared as
// dates, so the time of day of now does not matter.
func daysUntil(now, day time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(today).Hours() / 24)
}

func classify(days int) Urgency {
	switch {
	case days < 0:
		return UrgencyOverdue
	case days <= DueSoonDays:
		return UrgencyDueSoon
	default:
		return UrgencyOnTrack
	}
}

// Package agenda derives ordered and grouped views from the lesson and unit
// collections. Every function is pure: it never mutates its inputs and
// returns freshly allocated slices.
package agenda

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
)

// UnknownShiftWeight sorts lessons whose unit or shift is unknown last.
const UnknownShiftWeight = 4

var shiftKeywords = []struct {
	weight   int
	keywords []string
}{
	{1, []string{"manhã", "manha", "morning"}},
	{2, []string{"tarde", "afternoon"}},
	{3, []string{"noite", "evening", "night"}},
}

// ShiftWeight maps a free-text shift label to its tie-break weight:
// morning 1, afternoon 2, evening 3, anything else 4.
func ShiftWeight(shift string) int {
	s := strings.ToLower(shift)
	if s == "" {
		return UnknownShiftWeight
	}
	for _, sk := range shiftKeywords {
		for _, kw := range sk.keywords {
			if strings.Contains(s, kw) {
				return sk.weight
			}
		}
	}
	return UnknownShiftWeight
}

// Window returns the first and last day (both at midnight, in ref's
// location) of the seven-day week containing ref.
func Window(ref time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	day := truncateDay(ref)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// WeeklyAgenda returns the lessons dated inside the week containing ref,
// ordered by date and then by the shift weight of their unit. Lessons with
// an unparseable date are skipped.
func WeeklyAgenda(lessons []domain.Lesson, units []domain.Unit, ref time.Time, weekStart time.Weekday) []domain.Lesson {
	start, end := Window(ref, weekStart)
	startKey, endKey := start.Format(domain.DateLayout), end.Format(domain.DateLayout)

	weights := make(map[string]int, len(units))
	for _, u := range units {
		weights[u.ID] = ShiftWeight(u.Shift)
	}
	weightOf := func(l domain.Lesson) int {
		if w, ok := weights[l.UnitID]; ok {
			return w
		}
		return UnknownShiftWeight
	}

	// YYYY-MM-DD keys compare lexically in date order.
	out := make([]domain.Lesson, 0)
	for _, l := range lessons {
		if _, err := l.Day(); err != nil {
			continue
		}
		if l.Date >= startKey && l.Date <= endKey {
			out = append(out, l)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return weightOf(a) < weightOf(b)
	})
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

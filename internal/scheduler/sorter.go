package scheduler

import (
	"sort"

	"github.com/alexanderramin/lessonplan/internal/agenda"
)

// CanonicalSort sorts candidates by the deterministic canonical rules:
// 1. Urgency: overdue > due soon > on track
// 2. Date: earliest first
// 3. Shift: morning before afternoon before evening
// 4. Score: higher first
// 5. Lesson ID: lexical ascending
func CanonicalSort(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if pa, pb := UrgencyPriority(a.Urgency), UrgencyPriority(b.Urgency); pa != pb {
			return pa < pb
		}
		if a.DaysUntil != b.DaysUntil {
			return a.DaysUntil < b.DaysUntil
		}
		if sa, sb := shiftOf(a), shiftOf(b); sa != sb {
			return sa < sb
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Lesson.ID < b.Lesson.ID
	})
}

func shiftOf(c Candidate) int {
	if c.Unit == nil {
		return agenda.ShiftWeight("")
	}
	return agenda.ShiftWeight(c.Unit.Shift)
}

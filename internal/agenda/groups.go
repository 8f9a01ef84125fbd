package agenda

import (
	"sort"

	"github.com/alexanderramin/lessonplan/internal/domain"
)

// ClassCodes returns the distinct class codes of units in first-seen order.
func ClassCodes(units []domain.Unit) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, u := range units {
		if !seen[u.ClassCode] {
			seen[u.ClassCode] = true
			codes = append(codes, u.ClassCode)
		}
	}
	return codes
}

// UnitsByClass returns the units whose class code is code.
func UnitsByClass(units []domain.Unit, code string) []domain.Unit {
	var out []domain.Unit
	for _, u := range units {
		if u.ClassCode == code {
			out = append(out, u)
		}
	}
	return out
}

// FindUnit returns the unit with the given id.
func FindUnit(units []domain.Unit, id string) (domain.Unit, bool) {
	for _, u := range units {
		if u.ID == id {
			return u, true
		}
	}
	return domain.Unit{}, false
}

// FindLesson returns the lesson with the given id.
func FindLesson(lessons []domain.Lesson, id string) (domain.Lesson, bool) {
	for _, l := range lessons {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Lesson{}, false
}

// UnitLessons returns the lessons of one unit sorted by date.
func UnitLessons(lessons []domain.Lesson, unitID string) []domain.Lesson {
	var out []domain.Lesson
	for _, l := range lessons {
		if l.UnitID == unitID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// UnitGroup is a unit joined with its lessons.
type UnitGroup struct {
	Unit    domain.Unit
	Lessons []domain.Lesson
}

// GroupByUnit joins units to their lessons in unit order. Lessons whose unit
// no longer exists appear in no group.
func GroupByUnit(lessons []domain.Lesson, units []domain.Unit) []UnitGroup {
	groups := make([]UnitGroup, 0, len(units))
	for _, u := range units {
		groups = append(groups, UnitGroup{Unit: u, Lessons: UnitLessons(lessons, u.ID)})
	}
	return groups
}

// Orphans returns lessons that reference a unit id not present in units.
func Orphans(lessons []domain.Lesson, units []domain.Unit) []domain.Lesson {
	known := make(map[string]bool, len(units))
	for _, u := range units {
		known[u.ID] = true
	}
	var out []domain.Lesson
	for _, l := range lessons {
		if !known[l.UnitID] {
			out = append(out, l)
		}
	}
	return out
}

// StatusCounts tallies lessons per status.
func StatusCounts(lessons []domain.Lesson) map[domain.Status]int {
	counts := make(map[domain.Status]int, len(domain.Statuses))
	for _, s := range domain.Statuses {
		counts[s] = 0
	}
	for _, l := range lessons {
		counts[l.Status]++
	}
	return counts
}

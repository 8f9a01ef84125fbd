package importer

import (
	"github.com/alexanderramin/lessonplan/internal/agenda"
	"github.com/alexanderramin/lessonplan/internal/domain"
)

// Mode selects how a plan file is combined with the current dataset.
type Mode int

const (
	// Replace discards the current dataset.
	Replace Mode = iota
	// Merge upserts by id and keeps everything the file does not mention.
	Merge
)

// Report summarises what Apply changed.
type Report struct {
	LessonsAdded   int
	LessonsUpdated int
	UnitsAdded     int
	UnitsUpdated   int

	// Dangling lists lessons whose unit is missing from the result. They
	// are kept; views show them without a unit.
	Dangling []string
}

// Apply combines a validated plan file with current and returns the new
// dataset. current is not modified.
func Apply(current domain.Snapshot, pf *PlanFile, mode Mode) (domain.Snapshot, Report) {
	var rep Report
	var out domain.Snapshot

	switch mode {
	case Merge:
		out.Units = domain.CloneUnits(current.Units)
		for _, u := range pf.Units {
			if i := unitIndex(out.Units, u.ID); i >= 0 {
				out.Units[i] = u
				rep.UnitsUpdated++
			} else {
				out.Units = append(out.Units, u)
				rep.UnitsAdded++
			}
		}
		out.Lessons = domain.CloneLessons(current.Lessons)
		for _, l := range pf.Lessons {
			if i := lessonIndex(out.Lessons, l.ID); i >= 0 {
				out.Lessons[i] = l
				rep.LessonsUpdated++
			} else {
				out.Lessons = append(out.Lessons, l)
				rep.LessonsAdded++
			}
		}
	default:
		out = pf.Snapshot()
		rep.UnitsAdded = len(out.Units)
		rep.LessonsAdded = len(out.Lessons)
	}

	for _, l := range agenda.Orphans(out.Lessons, out.Units) {
		rep.Dangling = append(rep.Dangling, l.ID)
	}
	return out, rep
}

func unitIndex(units []domain.Unit, id string) int {
	for i := range units {
		if units[i].ID == id {
			return i
		}
	}
	return -1
}

func lessonIndex(lessons []domain.Lesson, id string) int {
	for i := range lessons {
		if lessons[i].ID == id {
			return i
		}
	}
	return -1
}

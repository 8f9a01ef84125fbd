package agenda

import (
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
)

// Day is one cell of the month calendar.
type Day struct {
	Date    time.Time
	Lessons []domain.Lesson
}

// MonthGrid returns one Day per calendar day of month's month, each holding
// the lessons dated that day in collection order.
func MonthGrid(lessons []domain.Lesson, month time.Time) []Day {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	next := first.AddDate(0, 1, 0)

	byDate := make(map[string][]domain.Lesson)
	for _, l := range lessons {
		byDate[l.Date] = append(byDate[l.Date], l)
	}

	var days []Day
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d, Lessons: byDate[d.Format(domain.DateLayout)]})
	}
	return days
}

// LessonsOn returns the lessons dated day.
func LessonsOn(lessons []domain.Lesson, day time.Time) []domain.Lesson {
	key := day.Format(domain.DateLayout)
	var out []domain.Lesson
	for _, l := range lessons {
		if l.Date == key {
			out = append(out, l)
		}
	}
	return out
}

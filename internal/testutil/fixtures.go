package testutil

import (
	"github.com/alexanderramin/lessonplan/internal/domain"
)

// Lesson options
type LessonOption func(*domain.Lesson)

func WithStatus(s domain.Status) LessonOption {
	return func(l *domain.Lesson) {
		l.Status = s
	}
}

func WithTitle(title string) LessonOption {
	return func(l *domain.Lesson) {
		l.Title = title
	}
}

func WithObservations(text string) LessonOption {
	return func(l *domain.Lesson) {
		l.Observations = text
	}
}

func WithLink(link string) LessonOption {
	return func(l *domain.Lesson) {
		l.Link = link
	}
}

func WithResources(resources, presentation string) LessonOption {
	return func(l *domain.Lesson) {
		l.ResourceNote = resources
		l.PresentationNote = presentation
	}
}

// NewTestLesson builds a valid lesson dated date (YYYY-MM-DD) in unitID.
func NewTestLesson(id, unitID, date string, opts ...LessonOption) domain.Lesson {
	l := domain.Lesson{
		ID:            id,
		UnitID:        unitID,
		SequenceLabel: "Aula " + id,
		Date:          date,
		Title:         "Lesson " + id,
		Description:   "Description of " + id,
		Status:        domain.StatusToPrepare,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Unit options
type UnitOption func(*domain.Unit)

func WithShift(shift string) UnitOption {
	return func(u *domain.Unit) {
		u.Shift = shift
	}
}

func WithClassCode(code string) UnitOption {
	return func(u *domain.Unit) {
		u.ClassCode = code
	}
}

func WithUnitName(name string) UnitOption {
	return func(u *domain.Unit) {
		u.Name = name
	}
}

func WithLinks(diary, drive string) UnitOption {
	return func(u *domain.Unit) {
		u.DiaryLink = diary
		u.DriveLink = drive
	}
}

// NewTestUnit builds a valid unit with the given id.
func NewTestUnit(id string, opts ...UnitOption) domain.Unit {
	u := domain.Unit{
		ID:          id,
		Name:        "Unit " + id,
		ClassCode:   "TEST - V1",
		Shift:       "Noite",
		Description: "Block " + id,
		Location:    "Sala 1",
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// ScenarioUnits returns the two-unit dataset used across agenda and store
// tests: u1 in the morning, u2 in the evening.
func ScenarioUnits() []domain.Unit {
	return []domain.Unit{
		NewTestUnit("u1", WithShift("Manhã")),
		NewTestUnit("u2", WithShift("Noite")),
	}
}

// ScenarioLessons returns two lessons on 2026-01-20: l1 in u2, l2 in u1.
func ScenarioLessons() []domain.Lesson {
	return []domain.Lesson{
		NewTestLesson("l1", "u2", "2026-01-20"),
		NewTestLesson("l2", "u1", "2026-01-20"),
	}
}

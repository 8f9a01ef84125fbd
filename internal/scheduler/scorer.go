package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lessonplan/internal/agenda"
	"github.com/alexanderramin/lessonplan/internal/domain"
)

// ReasonCode identifies one scoring factor.
type ReasonCode string

const (
	ReasonDeadline ReasonCode = "deadline"
	ReasonMomentum ReasonCode = "momentum"
	ReasonNoUnit   ReasonCode = "no_unit"
)

// Reason explains part of a candidate's score.
type Reason struct {
	Code        ReasonCode
	Message     string
	WeightDelta float64
}

// ScoringWeights scale each factor.
type ScoringWeights struct {
	Deadline float64
	Momentum float64
}

func defaultWeights() ScoringWeights {
	return ScoringWeights{Deadline: 1.0, Momentum: 1.0}
}

// Candidate is a lesson awaiting preparation with its score.
type Candidate struct {
	Lesson    domain.Lesson
	Unit      *domain.Unit
	DaysUntil int
	Urgency   Urgency
	Score     float64
	Reasons   []Reason
}

func scoreLesson(l domain.Lesson, unit *domain.Unit, day, now time.Time, w ScoringWeights) Candidate {
	days := daysUntil(now, day)
	c := Candidate{
		Lesson:    l,
		Unit:      unit,
		DaysUntil: days,
		Urgency:   classify(days),
	}

	factors := []func(Candidate, ScoringWeights) *Reason{
		scoreDeadline,
		scoreMomentum,
		scoreNoUnit,
	}
	for _, f := range factors {
		if r := f(c, w); r != nil {
			c.Score += r.WeightDelta
			c.Reasons = append(c.Reasons, *r)
		}
	}
	return c
}

func scoreDeadline(c Candidate, w ScoringWeights) *Reason {
	var pressure float64
	switch d := c.DaysUntil; {
	case d <= 0:
		pressure = 100.0
	case d <= DueSoonDays:
		pressure = 80.0 / float64(d)
	case d <= 7:
		pressure = 40.0 / float64(d)
	default:
		pressure = 10.0 / float64(d)
	}
	return &Reason{
		Code:        ReasonDeadline,
		Message:     formatDeadlineMessage(c.DaysUntil),
		WeightDelta: pressure * w.Deadline,
	}
}

func scoreMomentum(c Candidate, w ScoringWeights) *Reason {
	if c.Lesson.Status != domain.StatusInPreparation {
		return nil
	}
	return &Reason{
		Code:        ReasonMomentum,
		Message:     "Already in preparation",
		WeightDelta: 15.0 * w.Momentum,
	}
}

func scoreNoUnit(c Candidate, _ ScoringWeights) *Reason {
	if c.Unit != nil {
		return nil
	}
	return &Reason{
		Code:        ReasonNoUnit,
		Message:     fmt.Sprintf("Unit %s no longer exists", c.Lesson.UnitID),
		WeightDelta: -5.0,
	}
}

func formatDeadlineMessage(days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("Was due %d days ago", -days)
	case days == -1:
		return "Was due yesterday"
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

// Options bound the queue.
type Options struct {
	Now time.Time

	// Horizon is how many days ahead to look. Overdue lessons are always
	// included. Zero means no limit.
	Horizon int

	// Limit caps the result. Zero means no limit.
	Limit int

	Weights *ScoringWeights
}

// PrepQueue returns every lesson that is not delivered, dated no later than
// the horizon, ranked by CanonicalSort. Lessons with unreadable dates are
// skipped.
func PrepQueue(lessons []domain.Lesson, units []domain.Unit, opts Options) []Candidate {
	w := defaultWeights()
	if opts.Weights != nil {
		w = *opts.Weights
	}

	var out []Candidate
	for _, l := range lessons {
		if l.Status == domain.StatusDelivered {
			continue
		}
		day, err := l.Day()
		if err != nil {
			continue
		}
		if opts.Horizon > 0 && daysUntil(opts.Now, day) > opts.Horizon {
			continue
		}
		var unit *domain.Unit
		if u, ok := agenda.FindUnit(units, l.UnitID); ok {
			unit = &u
		}
		out = append(out, scoreLesson(l, unit, day, opts.Now, w))
	}

	CanonicalSort(out)
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

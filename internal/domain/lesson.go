package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for lesson dates at rest and on
// the wire.
const DateLayout = "2006-01-02"

// Lesson is one scheduled class of a curricular unit.
type Lesson struct {
	ID               string `json:"id"`
	UnitID           string `json:"blockId"`
	SequenceLabel    string `json:"number"`
	Date             string `json:"date"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Status           Status `json:"status"`
	ResourceNote     string `json:"resources,omitempty"`
	PresentationNote string `json:"presentation,omitempty"`
	Observations     string `json:"observations,omitempty"`
	Link             string `json:"link,omitempty"`
}

// UnmarshalJSON defaults a missing status to ToPrepare.
func (l *Lesson) UnmarshalJSON(data []byte) error {
	type plain Lesson
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = StatusToPrepare
	}
	*l = Lesson(p)
	return nil
}

// Day parses the lesson date.
func (l Lesson) Day() (time.Time, error) {
	t, err := time.Parse(DateLayout, l.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, l.Date)
	}
	return t, nil
}

// Validate checks the invariants every stored lesson must satisfy.
func (l Lesson) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("lesson: %w", ErrMissingID)
	}
	if _, err := l.Day(); err != nil {
		return fmt.Errorf("lesson %s: %w", l.ID, err)
	}
	if !l.Status.Valid() {
		return fmt.Errorf("lesson %s: %w: %q", l.ID, ErrInvalidStatus, l.Status)
	}
	return nil
}

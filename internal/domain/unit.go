package domain

import "fmt"

// Unit is a curricular block taught to one class in one shift.
type Unit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ClassCode   string `json:"code"`
	Shift       string `json:"shift"`
	Description string `json:"description"`
	DiaryLink   string `json:"diary,omitempty"`
	Location    string `json:"location,omitempty"`
	DriveLink   string `json:"driveLink,omitempty"`
}

// Validate checks the invariants every stored unit must satisfy.
func (u Unit) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("unit: %w", ErrMissingID)
	}
	return nil
}

// Snapshot is the full dataset exchanged with local persistence and the
// remote endpoint.
type Snapshot struct {
	Lessons []Lesson `json:"lessons"`
	Units   []Unit   `json:"units"`
}

// Clone returns a snapshot whose slices do not alias s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{Lessons: CloneLessons(s.Lessons), Units: CloneUnits(s.Units)}
}

// CloneLessons copies ls into a fresh, never-nil slice.
func CloneLessons(ls []Lesson) []Lesson {
	out := make([]Lesson, len(ls))
	copy(out, ls)
	return out
}

// CloneUnits copies us into a fresh, never-nil slice.
func CloneUnits(us []Unit) []Unit {
	out := make([]Unit, len(us))
	copy(out, us)
	return out
}

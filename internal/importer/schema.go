// Package importer reads and writes plan files: a whole dataset of lessons
// and units in the same JSON shape the remote endpoint speaks.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/lessonplan/internal/domain"
)

// PlanFile is the top-level JSON structure of a plan file.
type PlanFile struct {
	Lessons []domain.Lesson `json:"lessons"`
	Units   []domain.Unit   `json:"units"`
}

// Snapshot returns the file contents as a dataset.
func (p *PlanFile) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Lessons: domain.CloneLessons(p.Lessons),
		Units:   domain.CloneUnits(p.Units),
	}
}

// LoadPlanFile reads and parses a plan file.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlanFile(data)
}

// ParsePlanFile parses plan file contents. Unknown fields are ignored.
func ParsePlanFile(data []byte) (*PlanFile, error) {
	var pf PlanFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &pf, nil
}

// WritePlanFile encodes snap as an indented plan file.
func WritePlanFile(w io.Writer, snap domain.Snapshot) error {
	pf := PlanFile{
		Lessons: domain.CloneLessons(snap.Lessons),
		Units:   domain.CloneUnits(snap.Units),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pf); err != nil {
		return fmt.Errorf("encoding plan file: %w", err)
	}
	return nil
}

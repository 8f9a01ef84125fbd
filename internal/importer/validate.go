package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
)

// ValidatePlanFile checks the plan file for errors before it is applied.
// Returns a slice of all validation errors found.
func ValidatePlanFile(pf *PlanFile) []error {
	var errs []error
	errs = append(errs, validateUnits(pf.Units)...)
	errs = append(errs, validateLessons(pf.Lessons)...)
	return errs
}

func validateUnits(units []domain.Unit) []error {
	var errs []error
	seen := make(map[string]bool, len(units))
	for i, u := range units {
		if u.ID == "" {
			errs = append(errs, fmt.Errorf("units[%d].id is required", i))
			continue
		}
		if seen[u.ID] {
			errs = append(errs, fmt.Errorf("units[%d]: duplicate id %q", i, u.ID))
		}
		seen[u.ID] = true
	}
	return errs
}

func validateLessons(lessons []domain.Lesson) []error {
	var errs []error
	seen := make(map[string]bool, len(lessons))
	for i, l := range lessons {
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("lessons[%d].id is required", i))
		} else {
			if seen[l.ID] {
				errs = append(errs, fmt.Errorf("lessons[%d]: duplicate id %q", i, l.ID))
			}
			seen[l.ID] = true
		}
		if l.Date == "" {
			errs = append(errs, fmt.Errorf("lessons[%d].date is required", i))
		} else if _, err := time.Parse(domain.DateLayout, l.Date); err != nil {
			errs = append(errs, fmt.Errorf("lessons[%d].date: invalid date format %q (expected YYYY-MM-DD)", i, l.Date))
		}
		if !l.Status.Valid() {
			errs = append(errs, fmt.Errorf("lessons[%d].status: invalid value %q", i, l.Status))
		}
	}
	return errs
}

package models

import (
	"sort"
	"time"
)

// NeedsRecord is one row of the needs matrix: a student plus the set of
// required courses they are currently eligible to take. Needs only carries
// true flags; any course absent from the map is not needed. The record is a
// derived view and is recomputed whenever its inputs change.
type NeedsRecord struct {
	StudentID  string          `json:"student_id"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Major      string          `json:"major"`
	Cohort     string          `json:"cohort"`
	LastEnroll time.Time       `json:"last_enroll"`
	Needs      map[string]bool `json:"needs"`
}

// NeededCourses returns the needed course codes in sorted order.
func (r NeedsRecord) NeededCourses() []string {
	codes := make([]string, 0, len(r.Needs))
	for code, needed := range r.Needs {
		if needed {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

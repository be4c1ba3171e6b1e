package models

import "time"

// NeverOfferedMonths is the recency sentinel for courses with no offering
// history. It keeps "never offered" sortable without null handling.
const NeverOfferedMonths = 999

// Course is immutable catalog reference data.
type Course struct {
	Code  string `db:"code" json:"code"`
	Title string `db:"title" json:"title"`
}

// CourseOffering captures the most recent term a course was taught in.
type CourseOffering struct {
	CourseCode string    `db:"course_code" json:"course_code"`
	TermName   string    `db:"term_name" json:"term_name"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	MonthsAgo  int       `db:"months_ago" json:"months_ago"`
}

// DemandRecord is the aggregated demand for one course joined with its
// offering recency. MonthsAgo is NeverOfferedMonths when LastOffered is nil.
type DemandRecord struct {
	CourseCode  string     `json:"course_code"`
	Demand      int        `json:"demand"`
	LastOffered *time.Time `json:"last_offered,omitempty"`
	MonthsAgo   int        `json:"months_ago"`
}

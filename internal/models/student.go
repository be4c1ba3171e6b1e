package models

import "time"

// Student is an active learner as seen by the planning engine. The row is
// derived from transcript activity, so LastActiveDate reflects the most
// recent term the student appeared in.
type Student struct {
	ID             string    `db:"id" json:"id"`
	FullName       string    `db:"full_name" json:"full_name"`
	Email          string    `db:"email" json:"email"`
	MajorCode      string    `db:"major_code" json:"major_code"`
	Cohort         string    `db:"cohort" json:"cohort"`
	LastActiveDate time.Time `db:"last_active_date" json:"last_active_date"`
}

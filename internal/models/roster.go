package models

// RosterStudent is one enrollment in a section roster.
type RosterStudent struct {
	StudentID string `db:"student_id" json:"student_id"`
	FullName  string `db:"full_name" json:"full_name"`
}

// Roster maps a course code to its enrolled students for the term being
// scheduled.
type Roster map[string][]RosterStudent

// Add appends a student to a course roster, ignoring duplicate enrollments
// of the same student in the same course.
func (r Roster) Add(courseCode string, student RosterStudent) {
	for _, existing := range r[courseCode] {
		if existing.StudentID == student.StudentID {
			return
		}
	}
	r[courseCode] = append(r[courseCode], student)
}

package models

// Conflict is one student booked into two colliding slots. Courses and
// Slots are index-aligned pairs.
type Conflict struct {
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	Courses     [2]string `json:"courses"`
	Slots       [2]string `json:"slots"`
}

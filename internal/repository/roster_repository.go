package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-planner-api/internal/models"
)

// RosterRepository provides database access to the draft term rosters and
// their slot assignments.
type RosterRepository struct {
	db *sqlx.DB
}

// NewRosterRepository creates a new instance of RosterRepository.
func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

type rosterRow struct {
	CourseCode string `db:"course_code"`
	StudentID  string `db:"student_id"`
	FullName   string `db:"full_name"`
}

// Rosters returns the enrolled students per course for the draft term.
func (r *RosterRepository) Rosters(ctx context.Context) (models.Roster, error) {
	const query = `SELECT sr.course_code, sr.student_id, s.full_name
        FROM section_rosters sr
        JOIN students s ON s.id = sr.student_id
        ORDER BY sr.course_code, sr.student_id`
	var rows []rosterRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("load rosters: %w", err)
	}
	rosters := make(models.Roster)
	for _, row := range rows {
		rosters.Add(row.CourseCode, models.RosterStudent{StudentID: row.StudentID, FullName: row.FullName})
	}
	return rosters, nil
}

type slotRow struct {
	CourseCode string `db:"course_code"`
	Slot       string `db:"slot"`
}

// SlotAssignments returns the slot assigned to each course in the draft
// term, keyed by course code.
func (r *RosterRepository) SlotAssignments(ctx context.Context) (map[string]string, error) {
	const query = `SELECT course_code, slot FROM section_slots ORDER BY course_code`
	var rows []slotRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("load slot assignments: %w", err)
	}
	slots := make(map[string]string, len(rows))
	for _, row := range rows {
		slots[row.CourseCode] = row.Slot
	}
	return slots, nil
}

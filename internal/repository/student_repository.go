package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-planner-api/internal/models"
)

// StudentRepository provides database access to the student roster.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListActive returns students whose latest transcript term started within
// the given number of months. Students with no transcript rows are not
// active by definition and are excluded by the join.
func (r *StudentRepository) ListActive(ctx context.Context, months int) ([]models.Student, error) {
	const query = `SELECT s.id, s.full_name, s.email, s.major_code, s.cohort, MAX(t.term_start) AS last_active_date
        FROM students s
        JOIN transcripts t ON t.student_id = s.id
        GROUP BY s.id, s.full_name, s.email, s.major_code, s.cohort
        HAVING MAX(t.term_start) >= NOW() - make_interval(months => $1)
        ORDER BY s.id`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, months); err != nil {
		return nil, fmt.Errorf("list active students: %w", err)
	}
	return students, nil
}

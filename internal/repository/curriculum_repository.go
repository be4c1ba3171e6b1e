package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CurriculumRepository provides database access to major requirements.
type CurriculumRepository struct {
	db *sqlx.DB
}

// NewCurriculumRepository creates a new instance of CurriculumRepository.
func NewCurriculumRepository(db *sqlx.DB) *CurriculumRepository {
	return &CurriculumRepository{db: db}
}

type requirementRow struct {
	MajorPrefix string `db:"major_prefix"`
	CourseCode  string `db:"course_code"`
}

// MajorRequirements returns the required course codes keyed by major prefix.
func (r *CurriculumRepository) MajorRequirements(ctx context.Context) (map[string][]string, error) {
	const query = `SELECT major_prefix, course_code FROM curriculum_requirements ORDER BY major_prefix, course_code`
	var rows []requirementRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("load curriculum requirements: %w", err)
	}
	requirements := make(map[string][]string)
	for _, row := range rows {
		requirements[row.MajorPrefix] = append(requirements[row.MajorPrefix], row.CourseCode)
	}
	return requirements, nil
}

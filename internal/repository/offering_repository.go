package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-planner-api/internal/models"
)

// OfferingRepository provides database access to course offering history.
type OfferingRepository struct {
	db *sqlx.DB
}

// NewOfferingRepository creates a new instance of OfferingRepository.
func NewOfferingRepository(db *sqlx.DB) *OfferingRepository {
	return &OfferingRepository{db: db}
}

// LastOffered returns the most recent offering per course, keyed by course
// code. Courses that were never offered are simply absent.
func (r *OfferingRepository) LastOffered(ctx context.Context) (map[string]models.CourseOffering, error) {
	const query = `SELECT DISTINCT ON (course_code) course_code, term_name, start_date,
        (EXTRACT(YEAR FROM age(NOW(), start_date)) * 12 + EXTRACT(MONTH FROM age(NOW(), start_date)))::int AS months_ago
        FROM course_offerings
        ORDER BY course_code, start_date DESC`
	var offerings []models.CourseOffering
	if err := r.db.SelectContext(ctx, &offerings, query); err != nil {
		return nil, fmt.Errorf("load last offerings: %w", err)
	}
	byCourse := make(map[string]models.CourseOffering, len(offerings))
	for _, offering := range offerings {
		byCourse[offering.CourseCode] = offering
	}
	return byCourse, nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// TranscriptRepository provides database access to completed coursework.
type TranscriptRepository struct {
	db *sqlx.DB
}

// NewTranscriptRepository creates a new instance of TranscriptRepository.
func NewTranscriptRepository(db *sqlx.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

type completedRow struct {
	StudentID  string `db:"student_id"`
	CourseCode string `db:"course_code"`
}

// BulkCompleted returns the completed course codes per student. Passing
// grades sort below 'F'; in-progress and incomplete marks also count so a
// student is never scheduled into a course they are sitting in right now.
func (r *TranscriptRepository) BulkCompleted(ctx context.Context, studentIDs []string) (map[string]map[string]bool, error) {
	completed := make(map[string]map[string]bool, len(studentIDs))
	if len(studentIDs) == 0 {
		return completed, nil
	}

	const chunkSize = 100
	for start := 0; start < len(studentIDs); start += chunkSize {
		end := start + chunkSize
		if end > len(studentIDs) {
			end = len(studentIDs)
		}
		chunk := studentIDs[start:end]
		placeholders := make([]string, len(chunk))
		args := make([]interface{}, len(chunk))
		for i, id := range chunk {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args[i] = id
		}
		query := fmt.Sprintf(`SELECT student_id, course_code FROM transcripts
        WHERE student_id IN (%s) AND (grade < 'F' OR grade IN ('IP', 'I'))`, strings.Join(placeholders, ", "))

		var rows []completedRow
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("bulk completed transcripts: %w", err)
		}
		for _, row := range rows {
			if completed[row.StudentID] == nil {
				completed[row.StudentID] = make(map[string]bool)
			}
			completed[row.StudentID][row.CourseCode] = true
		}
	}
	return completed, nil
}

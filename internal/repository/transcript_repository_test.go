package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestTranscriptRepositoryBulkCompleted(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTranscriptRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "course_code"}).
		AddRow("s-1", "GRAM-101").
		AddRow("s-1", "CONV-110").
		AddRow("s-2", "GRAM-101")
	mock.ExpectQuery(`SELECT student_id, course_code FROM transcripts`).
		WithArgs("s-1", "s-2").
		WillReturnRows(rows)

	completed, err := repo.BulkCompleted(context.Background(), []string{"s-1", "s-2"})
	require.NoError(t, err)
	assert.True(t, completed["s-1"]["GRAM-101"])
	assert.True(t, completed["s-1"]["CONV-110"])
	assert.True(t, completed["s-2"]["GRAM-101"])
	assert.False(t, completed["s-2"]["CONV-110"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptRepositoryBulkCompletedChunks(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTranscriptRepository(db)

	ids := make([]string, 150)
	for i := range ids {
		ids[i] = "s"
	}
	mock.ExpectQuery(`SELECT student_id, course_code FROM transcripts`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "course_code"}))
	mock.ExpectQuery(`SELECT student_id, course_code FROM transcripts`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "course_code"}))

	completed, err := repo.BulkCompleted(context.Background(), ids)
	require.NoError(t, err)
	assert.Empty(t, completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptRepositoryBulkCompletedEmpty(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTranscriptRepository(db)

	completed, err := repo.BulkCompleted(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, completed)
}

package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-planner-api/internal/models"
)

func TestChainRepositoryListRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewChainRepository(db)

	rows := sqlmock.NewRows([]string{"chain_id", "seq", "course_code"}).
		AddRow("GRAM", "1", "GRAM-101").
		AddRow("GRAM", "n/a", "GRAM-999").
		AddRow("", "2", "GHOST-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT chain_id, seq, course_code FROM prereq_chains ORDER BY chain_id, seq")).
		WillReturnRows(rows)

	chainRows, err := repo.ListRows(context.Background())
	require.NoError(t, err)
	// Dirty rows pass through untouched.
	require.Len(t, chainRows, 3)
	assert.Equal(t, models.ChainRow{ChainID: "GRAM", Order: "n/a", CourseCode: "GRAM-999"}, chainRows[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/models"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
)

type conflictDetectorStub struct {
	conflicts []models.Conflict
	err       error
}

func (s conflictDetectorStub) DetectConflicts(ctx context.Context) ([]models.Conflict, error) {
	return s.conflicts, s.err
}

func exportServiceForTest() *ExportService {
	needs := &needsBuilderStub{matrix: []models.NeedsRecord{
		{
			StudentID:  "s-1",
			FullName:   "Budi Santoso",
			Email:      "budi@example.com",
			Major:      "TES",
			Cohort:     "52B",
			LastEnroll: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			Needs:      map[string]bool{"GRAM-102": true, "ELEC-300": true},
		},
	}}
	offerings := offeringStub{offered: map[string]models.CourseOffering{}}
	demand := NewDemandService(needs, offerings, nil, nil, zap.NewNop())
	conflicts := conflictDetectorStub{conflicts: []models.Conflict{
		{
			StudentID:   "s-1",
			StudentName: "Budi Santoso",
			Courses:     [2]string{"GRAM-102", "CONV-110"},
			Slots:       [2]string{models.SlotMW1800, models.SlotMW1800},
		},
	}}
	return NewExportService(needs, demand, conflicts, nil, nil, zap.NewNop())
}

func TestExportNeedsMatrixCSV(t *testing.T) {
	svc := exportServiceForTest()
	result, err := svc.NeedsMatrix(context.Background(), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Filename, "needs-matrix-"))

	body := string(result.Content)
	assert.Contains(t, body, "student_id,full_name,email,major,cohort,last_enroll,needed_courses")
	assert.Contains(t, body, "s-1,Budi Santoso,budi@example.com,TES,52B,2026-05-12,ELEC-300 GRAM-102")
}

func TestExportDemandPDF(t *testing.T) {
	svc := exportServiceForTest()
	result, err := svc.Demand(context.Background(), FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	assert.NotEmpty(t, result.Content)
}

func TestExportConflictsCSV(t *testing.T) {
	svc := exportServiceForTest()
	result, err := svc.Conflicts(context.Background(), FormatCSV)
	require.NoError(t, err)

	body := string(result.Content)
	assert.Contains(t, body, "GRAM-102")
	assert.Contains(t, body, models.SlotMW1800)
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := exportServiceForTest()
	_, err := svc.NeedsMatrix(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

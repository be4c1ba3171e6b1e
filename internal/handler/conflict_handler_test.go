package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/models"
	"github.com/noah-isme/course-planner-api/internal/service"
	"github.com/noah-isme/course-planner-api/pkg/response"
)

type fakeRosterRepo struct {
	rosters models.Roster
	slots   map[string]string
	err     error
}

func (f fakeRosterRepo) Rosters(context.Context) (models.Roster, error) {
	return f.rosters, f.err
}

func (f fakeRosterRepo) SlotAssignments(context.Context) (map[string]string, error) {
	return f.slots, f.err
}

func conflictHandlerForTest(repo fakeRosterRepo) *ConflictHandler {
	conflicts := service.NewConflictService(repo, nil, zap.NewNop())
	exports := service.NewExportService(nil, nil, conflicts, nil, nil, zap.NewNop())
	return NewConflictHandler(conflicts, exports)
}

func TestConflictHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := fakeRosterRepo{
		rosters: models.Roster{
			"GRAM-102": {{StudentID: "s-1", FullName: "Budi Santoso"}},
			"CONV-110": {{StudentID: "s-1", FullName: "Budi Santoso"}},
		},
		slots: map[string]string{
			"GRAM-102": models.SlotMW1800,
			"CONV-110": models.SlotMW1800,
		},
	}
	handler := conflictHandlerForTest(repo)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/planning/conflicts", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.EqualValues(t, 1, envelope.Meta["conflict_count"])
}

func TestConflictHandlerListCatalogDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := conflictHandlerForTest(fakeRosterRepo{err: assert.AnError})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/planning/conflicts", nil)

	handler.List(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestConflictHandlerExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := conflictHandlerForTest(fakeRosterRepo{rosters: models.Roster{}, slots: map[string]string{}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/planning/conflicts/export?format=csv", nil)

	handler.Export(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "schedule-conflicts")
}

func TestConflictHandlerExportBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := conflictHandlerForTest(fakeRosterRepo{rosters: models.Roster{}, slots: map[string]string{}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/planning/conflicts/export?format=xlsx", nil)

	handler.Export(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

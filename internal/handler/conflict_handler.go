package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-planner-api/internal/service"
	"github.com/noah-isme/course-planner-api/pkg/response"
)

// ConflictHandler exposes the schedule conflict endpoints.
type ConflictHandler struct {
	conflicts *service.ConflictService
	exports   *service.ExportService
}

// NewConflictHandler constructs the conflict handler.
func NewConflictHandler(conflicts *service.ConflictService, exports *service.ExportService) *ConflictHandler {
	return &ConflictHandler{conflicts: conflicts, exports: exports}
}

// List godoc
// @Summary Schedule conflicts
// @Description Students booked into colliding slots in the draft schedule
// @Tags Planning
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /planning/conflicts [get]
func (h *ConflictHandler) List(c *gin.Context) {
	start := time.Now()
	conflicts, err := h.conflicts.DetectConflicts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"processing_time_ms": time.Since(start).Milliseconds(),
		"conflict_count":     len(conflicts),
	}
	response.JSON(c, http.StatusOK, conflicts, nil, meta)
}

// Export godoc
// @Summary Export the conflict report
// @Tags Planning
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /planning/conflicts/export [get]
func (h *ConflictHandler) Export(c *gin.Context) {
	serveExport(c, func(format string) (*service.ExportResult, error) {
		return h.exports.Conflicts(c.Request.Context(), format)
	})
}

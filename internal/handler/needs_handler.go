package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-planner-api/internal/service"
	"github.com/noah-isme/course-planner-api/pkg/response"
)

// NeedsHandler exposes the needs matrix endpoints.
type NeedsHandler struct {
	needs   *service.NeedsService
	exports *service.ExportService
}

// NewNeedsHandler constructs the needs handler.
func NewNeedsHandler(needs *service.NeedsService, exports *service.ExportService) *NeedsHandler {
	return &NeedsHandler{needs: needs, exports: exports}
}

// Matrix godoc
// @Summary Needs matrix
// @Description Every active student with the required courses they can take now
// @Tags Planning
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /planning/needs [get]
func (h *NeedsHandler) Matrix(c *gin.Context) {
	start := time.Now()
	matrix, err := h.needs.BuildNeedsMatrix(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{"processing_time_ms": time.Since(start).Milliseconds()}
	response.JSON(c, http.StatusOK, matrix, nil, meta)
}

// Student godoc
// @Summary Needs for one student
// @Tags Planning
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /planning/needs/{id} [get]
func (h *NeedsHandler) Student(c *gin.Context) {
	record, err := h.needs.StudentNeeds(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Export godoc
// @Summary Export the needs matrix
// @Tags Planning
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /planning/needs/export [get]
func (h *NeedsHandler) Export(c *gin.Context) {
	serveExport(c, func(format string) (*service.ExportResult, error) {
		return h.exports.NeedsMatrix(c.Request.Context(), format)
	})
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-planner-api/internal/service"
	"github.com/noah-isme/course-planner-api/pkg/response"
)

// DemandHandler exposes the course demand endpoints.
type DemandHandler struct {
	demand  *service.DemandService
	exports *service.ExportService
}

// NewDemandHandler constructs the demand handler.
func NewDemandHandler(demand *service.DemandService, exports *service.ExportService) *DemandHandler {
	return &DemandHandler{demand: demand, exports: exports}
}

// List godoc
// @Summary Course demand ranking
// @Description Per-course demand counts joined with offering recency
// @Tags Planning
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /planning/demand [get]
func (h *DemandHandler) List(c *gin.Context) {
	start := time.Now()
	demand, err := h.demand.Aggregate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{"processing_time_ms": time.Since(start).Milliseconds()}
	response.JSON(c, http.StatusOK, demand, nil, meta)
}

// Refresh godoc
// @Summary Drop the cached demand ranking
// @Tags Planning
// @Success 204
// @Router /planning/demand/refresh [post]
func (h *DemandHandler) Refresh(c *gin.Context) {
	if err := h.demand.InvalidateCache(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export the demand ranking
// @Tags Planning
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /planning/demand/export [get]
func (h *DemandHandler) Export(c *gin.Context) {
	serveExport(c, func(format string) (*service.ExportResult, error) {
		return h.exports.Demand(c.Request.Context(), format)
	})
}

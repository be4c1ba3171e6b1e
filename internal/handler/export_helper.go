package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-planner-api/internal/service"
	"github.com/noah-isme/course-planner-api/pkg/response"
)

// serveExport renders a report via the provided closure and streams it as a
// file download. The format defaults to CSV.
func serveExport(c *gin.Context, render func(format string) (*service.ExportResult, error)) {
	format := c.DefaultQuery("format", service.FormatCSV)
	result, err := render(format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

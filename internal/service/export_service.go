package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/models"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
	"github.com/noah-isme/course-planner-api/pkg/export"
)

// Export formats accepted by the report endpoints.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type demandAggregator interface {
	Aggregate(ctx context.Context) ([]models.DemandRecord, error)
}

type conflictDetector interface {
	DetectConflicts(ctx context.Context) ([]models.Conflict, error)
}

// ExportResult is a rendered report ready to stream to the client.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the planning reports as downloadable files.
type ExportService struct {
	needs     needsMatrixBuilder
	demand    demandAggregator
	conflicts conflictDetector
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(needs needsMatrixBuilder, demand demandAggregator, conflicts conflictDetector, csv *export.CSVExporter, pdf *export.PDFExporter, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{needs: needs, demand: demand, conflicts: conflicts, csv: csv, pdf: pdf, logger: logger}
}

// NeedsMatrix exports the full needs matrix.
func (s *ExportService) NeedsMatrix(ctx context.Context, format string) (*ExportResult, error) {
	matrix, err := s.needs.BuildNeedsMatrix(ctx)
	if err != nil {
		return nil, err
	}
	data := export.Dataset{
		Headers: []string{"student_id", "full_name", "email", "major", "cohort", "last_enroll", "needed_courses"},
	}
	for _, record := range matrix {
		data.Rows = append(data.Rows, map[string]string{
			"student_id":     record.StudentID,
			"full_name":      record.FullName,
			"email":          record.Email,
			"major":          record.Major,
			"cohort":         record.Cohort,
			"last_enroll":    record.LastEnroll.Format("2006-01-02"),
			"needed_courses": strings.Join(record.NeededCourses(), " "),
		})
	}
	return s.render(data, "needs-matrix", format)
}

// Demand exports the demand ranking.
func (s *ExportService) Demand(ctx context.Context, format string) (*ExportResult, error) {
	demand, err := s.demand.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	data := export.Dataset{
		Headers: []string{"course_code", "demand", "last_offered", "months_ago"},
	}
	for _, record := range demand {
		lastOffered := "never"
		if record.LastOffered != nil {
			lastOffered = record.LastOffered.Format("2006-01-02")
		}
		data.Rows = append(data.Rows, map[string]string{
			"course_code":  record.CourseCode,
			"demand":       strconv.Itoa(record.Demand),
			"last_offered": lastOffered,
			"months_ago":   strconv.Itoa(record.MonthsAgo),
		})
	}
	return s.render(data, "course-demand", format)
}

// Conflicts exports the schedule conflict report.
func (s *ExportService) Conflicts(ctx context.Context, format string) (*ExportResult, error) {
	conflicts, err := s.conflicts.DetectConflicts(ctx)
	if err != nil {
		return nil, err
	}
	data := export.Dataset{
		Headers: []string{"student_id", "student_name", "course_a", "slot_a", "course_b", "slot_b"},
	}
	for _, conflict := range conflicts {
		data.Rows = append(data.Rows, map[string]string{
			"student_id":   conflict.StudentID,
			"student_name": conflict.StudentName,
			"course_a":     conflict.Courses[0],
			"slot_a":       conflict.Slots[0],
			"course_b":     conflict.Courses[1],
			"slot_b":       conflict.Slots[1],
		})
	}
	return s.render(data, "schedule-conflicts", format)
}

func (s *ExportService) render(data export.Dataset, name, format string) (*ExportResult, error) {
	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case FormatCSV:
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("%s-%s.csv", name, stamp),
		}, nil
	case FormatPDF:
		content, err := s.pdf.Render(data, strings.ReplaceAll(name, "-", " "))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("%s-%s.pdf", name, stamp),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}

package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/models"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
)

type activeStudentLister interface {
	ListActive(ctx context.Context, months int) ([]models.Student, error)
}

type transcriptReader interface {
	BulkCompleted(ctx context.Context, studentIDs []string) (map[string]map[string]bool, error)
}

type curriculumReader interface {
	MajorRequirements(ctx context.Context) (map[string][]string, error)
}

type chainRowLister interface {
	ListRows(ctx context.Context) ([]models.ChainRow, error)
}

// NeedsService builds the needs matrix: every active student crossed with
// the required courses they are eligible to take right now.
type NeedsService struct {
	students     activeStudentLister
	transcripts  transcriptReader
	curriculum   curriculumReader
	chains       chainRowLister
	metrics      *MetricsService
	logger       *zap.Logger
	activeMonths int
}

// NewNeedsService constructs NeedsService. activeMonths bounds how far back
// a student's last enrollment may be while still counting as active.
func NewNeedsService(students activeStudentLister, transcripts transcriptReader, curriculum curriculumReader, chains chainRowLister, activeMonths int, metrics *MetricsService, logger *zap.Logger) *NeedsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if activeMonths <= 0 {
		activeMonths = 6
	}
	return &NeedsService{
		students:     students,
		transcripts:  transcripts,
		curriculum:   curriculum,
		chains:       chains,
		metrics:      metrics,
		logger:       logger,
		activeMonths: activeMonths,
	}
}

// BuildNeedsMatrix recomputes the matrix from scratch. Per-student data
// gaps degrade to empty values: a major without a curriculum entry or a
// student without transcript rows yields a record with no needs. Only a
// failure to load one of the shared catalogs aborts the build.
func (s *NeedsService) BuildNeedsMatrix(ctx context.Context) ([]models.NeedsRecord, error) {
	start := time.Now()
	requirements, err := s.curriculum.MajorRequirements(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, "failed to load curriculum")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("curriculum_requirements", time.Since(start))
	}

	start = time.Now()
	chainRows, err := s.chains.ListRows(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, "failed to load prerequisite chains")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("chain_rows", time.Since(start))
	}

	start = time.Now()
	students, err := s.students.ListActive(ctx, s.activeMonths)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, "failed to load active students")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("active_students", time.Since(start))
	}
	if len(students) == 0 {
		return []models.NeedsRecord{}, nil
	}

	ids := make([]string, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.ID)
	}
	start = time.Now()
	completedByStudent, err := s.transcripts.BulkCompleted(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load transcripts")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("bulk_transcripts", time.Since(start))
	}

	index := BuildChainIndex(chainRows)

	sort.SliceStable(students, func(i, j int) bool { return students[i].ID < students[j].ID })

	matrix := make([]models.NeedsRecord, 0, len(students))
	unknownMajors := 0
	for _, st := range students {
		prefix := models.MajorPrefix(st.MajorCode)
		required, ok := requirements[prefix]
		if !ok {
			unknownMajors++
		}
		completed := completedByStudent[st.ID]
		if completed == nil {
			completed = map[string]bool{}
		}

		needs := make(map[string]bool)
		for _, course := range index.EligibleCourses(required, completed) {
			needs[course] = true
		}
		matrix = append(matrix, models.NeedsRecord{
			StudentID:  st.ID,
			FullName:   st.FullName,
			Email:      st.Email,
			Major:      prefix,
			Cohort:     st.Cohort,
			LastEnroll: st.LastActiveDate,
			Needs:      needs,
		})
	}
	if unknownMajors > 0 {
		s.logger.Warn("students with majors missing from the curriculum", zap.Int("count", unknownMajors))
	}
	s.logger.Info("needs matrix built",
		zap.Int("students", len(matrix)),
		zap.Int("chains", len(index.ChainIDs())))
	return matrix, nil
}

// StudentNeeds returns the matrix row for one student.
func (s *NeedsService) StudentNeeds(ctx context.Context, studentID string) (*models.NeedsRecord, error) {
	matrix, err := s.BuildNeedsMatrix(ctx)
	if err != nil {
		return nil, err
	}
	for i := range matrix {
		if matrix[i].StudentID == studentID {
			return &matrix[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found or not active")
}

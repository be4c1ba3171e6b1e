package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/models"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
)

type rosterReader interface {
	Rosters(ctx context.Context) (models.Roster, error)
	SlotAssignments(ctx context.Context) (map[string]string, error)
}

// ConflictService checks a draft schedule for students booked into
// colliding slots.
type ConflictService struct {
	rosters rosterReader
	metrics *MetricsService
	logger  *zap.Logger
}

// NewConflictService constructs ConflictService. metrics may be nil.
func NewConflictService(rosters rosterReader, metrics *MetricsService, logger *zap.Logger) *ConflictService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConflictService{rosters: rosters, metrics: metrics, logger: logger}
}

// DetectConflicts loads the term rosters and slot assignments and returns
// every pairwise collision. A student in N mutually colliding courses
// yields one record per pair.
func (s *ConflictService) DetectConflicts(ctx context.Context) ([]models.Conflict, error) {
	start := time.Now()
	rosters, err := s.rosters.Rosters(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, "failed to load rosters")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("rosters", time.Since(start))
	}

	start = time.Now()
	slots, err := s.rosters.SlotAssignments(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, "failed to load slot assignments")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("slot_assignments", time.Since(start))
	}
	conflicts := detectConflicts(rosters, slots)
	s.logger.Info("conflict scan finished",
		zap.Int("courses", len(rosters)),
		zap.Int("conflicts", len(conflicts)))
	return conflicts, nil
}

type enrollmentSlot struct {
	course string
	slot   string
}

// detectConflicts runs the pairwise scan. Courses without a slot, or
// parked in the unassigned slot, are excluded up front. Output is ordered
// by student id, then by the first course code of the pair.
func detectConflicts(rosters models.Roster, slots map[string]string) []models.Conflict {
	byStudent := make(map[string][]enrollmentSlot)
	names := make(map[string]string)
	for course, students := range rosters {
		slot, ok := slots[course]
		if !ok || slot == models.SlotUnassigned {
			continue
		}
		for _, st := range students {
			byStudent[st.StudentID] = append(byStudent[st.StudentID], enrollmentSlot{course: course, slot: slot})
			names[st.StudentID] = st.FullName
		}
	}

	studentIDs := make([]string, 0, len(byStudent))
	for id := range byStudent {
		studentIDs = append(studentIDs, id)
	}
	sort.Strings(studentIDs)

	var conflicts []models.Conflict
	for _, id := range studentIDs {
		enrollments := byStudent[id]
		sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].course < enrollments[j].course })
		for i := 0; i < len(enrollments); i++ {
			for j := i + 1; j < len(enrollments); j++ {
				if !models.SlotsOverlap(enrollments[i].slot, enrollments[j].slot) {
					continue
				}
				conflicts = append(conflicts, models.Conflict{
					StudentID:   id,
					StudentName: names[id],
					Courses:     [2]string{enrollments[i].course, enrollments[j].course},
					Slots:       [2]string{enrollments[i].slot, enrollments[j].slot},
				})
			}
		}
	}
	return conflicts
}

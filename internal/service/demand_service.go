package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/models"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
)

const demandCacheKey = "planner:demand"

type needsMatrixBuilder interface {
	BuildNeedsMatrix(ctx context.Context) ([]models.NeedsRecord, error)
}

type offeringReader interface {
	LastOffered(ctx context.Context) (map[string]models.CourseOffering, error)
}

// DemandService folds the needs matrix into per-course demand counts joined
// with offering recency, the ranking registrars schedule from.
type DemandService struct {
	needs     needsMatrixBuilder
	offerings offeringReader
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewDemandService constructs DemandService. cache and metrics may be nil.
func NewDemandService(needs needsMatrixBuilder, offerings offeringReader, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *DemandService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemandService{needs: needs, offerings: offerings, cache: cache, metrics: metrics, logger: logger}
}

// Aggregate returns demand records sorted by demand descending, course code
// ascending. Courses nobody needs are omitted. Courses that were never
// offered carry the recency sentinel instead of a date.
func (s *DemandService) Aggregate(ctx context.Context) ([]models.DemandRecord, error) {
	var cached []models.DemandRecord
	if hit, err := s.cache.Get(ctx, demandCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	matrix, err := s.needs.BuildNeedsMatrix(ctx)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	offered, err := s.offerings.LastOffered(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load offering history")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("last_offered", time.Since(start))
	}

	counts := make(map[string]int)
	for _, record := range matrix {
		for course, needed := range record.Needs {
			if needed {
				counts[course]++
			}
		}
	}

	demand := make([]models.DemandRecord, 0, len(counts))
	for course, count := range counts {
		record := models.DemandRecord{
			CourseCode: course,
			Demand:     count,
			MonthsAgo:  models.NeverOfferedMonths,
		}
		if offering, ok := offered[course]; ok {
			start := offering.StartDate
			record.LastOffered = &start
			record.MonthsAgo = offering.MonthsAgo
		}
		demand = append(demand, record)
	}
	sort.Slice(demand, func(i, j int) bool {
		if demand[i].Demand != demand[j].Demand {
			return demand[i].Demand > demand[j].Demand
		}
		return demand[i].CourseCode < demand[j].CourseCode
	})

	if err := s.cache.Set(ctx, demandCacheKey, demand, 0); err != nil {
		s.logger.Warn("failed to cache demand", zap.Error(err))
	}
	s.logger.Info("demand aggregated", zap.Int("courses", len(demand)))
	return demand, nil
}

// InvalidateCache drops the cached demand ranking, forcing the next
// Aggregate call to recompute.
func (s *DemandService) InvalidateCache(ctx context.Context) error {
	return s.cache.Invalidate(ctx, demandCacheKey)
}

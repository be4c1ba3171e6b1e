package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/models"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
)

type needsBuilderStub struct {
	matrix []models.NeedsRecord
	err    error
	calls  int
}

func (s *needsBuilderStub) BuildNeedsMatrix(ctx context.Context) ([]models.NeedsRecord, error) {
	s.calls++
	return s.matrix, s.err
}

type offeringStub struct {
	offered map[string]models.CourseOffering
	err     error
}

func (s offeringStub) LastOffered(ctx context.Context) (map[string]models.CourseOffering, error) {
	return s.offered, s.err
}

type memoryCacheRepo struct {
	entries map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.entries = map[string][]byte{}
	return nil
}

func demandMatrix() []models.NeedsRecord {
	return []models.NeedsRecord{
		{StudentID: "s-1", Needs: map[string]bool{"GRAM-102": true, "ELEC-300": true}},
		{StudentID: "s-2", Needs: map[string]bool{"GRAM-102": true}},
		{StudentID: "s-3", Needs: map[string]bool{"CONV-110": true}},
	}
}

func TestDemandAggregate(t *testing.T) {
	offered := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	offerings := offeringStub{offered: map[string]models.CourseOffering{
		"GRAM-102": {CourseCode: "GRAM-102", StartDate: offered, MonthsAgo: 7},
	}}
	svc := NewDemandService(&needsBuilderStub{matrix: demandMatrix()}, offerings, nil, nil, zap.NewNop())

	demand, err := svc.Aggregate(context.Background())
	require.NoError(t, err)
	require.Len(t, demand, 3)

	assert.Equal(t, "GRAM-102", demand[0].CourseCode)
	assert.Equal(t, 2, demand[0].Demand)
	assert.Equal(t, 7, demand[0].MonthsAgo)
	require.NotNil(t, demand[0].LastOffered)
	assert.Equal(t, offered, *demand[0].LastOffered)

	// Ties on demand break by course code.
	assert.Equal(t, "CONV-110", demand[1].CourseCode)
	assert.Equal(t, "ELEC-300", demand[2].CourseCode)

	// Never offered courses carry the sentinel.
	assert.Equal(t, models.NeverOfferedMonths, demand[1].MonthsAgo)
	assert.Nil(t, demand[1].LastOffered)
}

func TestDemandAggregateUsesCache(t *testing.T) {
	needs := &needsBuilderStub{matrix: demandMatrix()}
	cache := NewCacheService(newMemoryCacheRepo(), nil, time.Minute, zap.NewNop(), true)
	svc := NewDemandService(needs, offeringStub{}, cache, nil, zap.NewNop())

	first, err := svc.Aggregate(context.Background())
	require.NoError(t, err)
	second, err := svc.Aggregate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, needs.calls, "second call must be served from cache")

	require.NoError(t, svc.InvalidateCache(context.Background()))
	_, err = svc.Aggregate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, needs.calls)
}

func TestDemandAggregatePropagatesMatrixError(t *testing.T) {
	needs := &needsBuilderStub{err: appErrors.Clone(appErrors.ErrCatalogUnavailable, "curriculum down")}
	svc := NewDemandService(needs, offeringStub{}, nil, nil, zap.NewNop())

	_, err := svc.Aggregate(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrCatalogUnavailable.Code, appErrors.FromError(err).Code)
}

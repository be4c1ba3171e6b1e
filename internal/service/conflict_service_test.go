package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/models"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
)

type rosterStub struct {
	rosters   models.Roster
	slots     map[string]string
	rosterErr error
	slotsErr  error
}

func (s rosterStub) Rosters(ctx context.Context) (models.Roster, error) {
	return s.rosters, s.rosterErr
}

func (s rosterStub) SlotAssignments(ctx context.Context) (map[string]string, error) {
	return s.slots, s.slotsErr
}

func TestDetectConflictsSameSlot(t *testing.T) {
	budi := models.RosterStudent{StudentID: "s-1", FullName: "Budi Santoso"}
	rosters := models.Roster{
		"GRAM-102": {budi},
		"CONV-110": {budi},
		"ELEC-300": {budi},
	}
	slots := map[string]string{
		"GRAM-102": models.SlotMW1800,
		"CONV-110": models.SlotMW1800,
		"ELEC-300": models.SlotSatAM,
	}
	svc := NewConflictService(rosterStub{rosters: rosters, slots: slots}, nil, zap.NewNop())

	conflicts, err := svc.DetectConflicts(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.Conflict{
		StudentID:   "s-1",
		StudentName: "Budi Santoso",
		Courses:     [2]string{"CONV-110", "GRAM-102"},
		Slots:       [2]string{models.SlotMW1800, models.SlotMW1800},
	}, conflicts[0])
}

func TestDetectConflictsBlockSlotOverlap(t *testing.T) {
	rina := models.RosterStudent{StudentID: "s-2", FullName: "Rina Putri"}
	rosters := models.Roster{
		"GRAM-201": {rina},
		"WRIT-150": {rina},
	}
	slots := map[string]string{
		"GRAM-201": models.SlotWedEveBlk,
		"WRIT-150": models.SlotMW1930,
	}
	svc := NewConflictService(rosterStub{rosters: rosters, slots: slots}, nil, zap.NewNop())

	conflicts, err := svc.DetectConflicts(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, [2]string{"GRAM-201", "WRIT-150"}, conflicts[0].Courses)
}

func TestDetectConflictsSkipsUnassigned(t *testing.T) {
	alex := models.RosterStudent{StudentID: "s-3", FullName: "Alex Chen"}
	rosters := models.Roster{
		"GRAM-102": {alex},
		"CONV-110": {alex},
		"ELEC-300": {alex},
	}
	slots := map[string]string{
		"GRAM-102": models.SlotUnassigned,
		"CONV-110": models.SlotUnassigned,
		// ELEC-300 has no assignment at all.
	}
	svc := NewConflictService(rosterStub{rosters: rosters, slots: slots}, nil, zap.NewNop())

	conflicts, err := svc.DetectConflicts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetectConflictsPairwiseExpansion(t *testing.T) {
	dewi := models.RosterStudent{StudentID: "s-4", FullName: "Dewi Lestari"}
	rosters := models.Roster{
		"A-100": {dewi},
		"B-100": {dewi},
		"C-100": {dewi},
	}
	slots := map[string]string{
		"A-100": models.SlotTTh1800,
		"B-100": models.SlotTTh1800,
		"C-100": models.SlotThuEveBlk,
	}
	svc := NewConflictService(rosterStub{rosters: rosters, slots: slots}, nil, zap.NewNop())

	conflicts, err := svc.DetectConflicts(context.Background())
	require.NoError(t, err)
	// Three mutually colliding courses produce all three pairs.
	require.Len(t, conflicts, 3)
	assert.Equal(t, [2]string{"A-100", "B-100"}, conflicts[0].Courses)
	assert.Equal(t, [2]string{"A-100", "C-100"}, conflicts[1].Courses)
	assert.Equal(t, [2]string{"B-100", "C-100"}, conflicts[2].Courses)
}

func TestDetectConflictsRosterFailure(t *testing.T) {
	svc := NewConflictService(rosterStub{rosterErr: assert.AnError}, nil, zap.NewNop())
	_, err := svc.DetectConflicts(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrCatalogUnavailable.Code, appErrors.FromError(err).Code)
}

func TestSlotsOverlapTable(t *testing.T) {
	assert.True(t, models.SlotsOverlap(models.SlotMW1800, models.SlotMW1800))
	assert.True(t, models.SlotsOverlap(models.SlotWedEveBlk, models.SlotMW1800))
	assert.True(t, models.SlotsOverlap(models.SlotMW1930, models.SlotWedEveBlk))
	assert.True(t, models.SlotsOverlap(models.SlotThuEveBlk, models.SlotTTh1930))
	assert.False(t, models.SlotsOverlap(models.SlotWedEveBlk, models.SlotTTh1800))
	assert.False(t, models.SlotsOverlap(models.SlotFriEve, models.SlotSatAM))
	assert.False(t, models.SlotsOverlap(models.SlotUnassigned, models.SlotUnassigned))
}

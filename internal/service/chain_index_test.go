package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-planner-api/internal/models"
)

func chainRows() []models.ChainRow {
	return []models.ChainRow{
		{ChainID: "GRAM", Order: "2", CourseCode: "GRAM-102"},
		{ChainID: "GRAM", Order: "1", CourseCode: "GRAM-101"},
		{ChainID: "GRAM", Order: "3", CourseCode: "GRAM-201"},
		{ChainID: "CONV", Order: "1", CourseCode: "CONV-110"},
		{ChainID: "CONV", Order: "2", CourseCode: "CONV-210"},
		{ChainID: "CONV", Order: "2", CourseCode: "GRAM-102"},
	}
}

func TestBuildChainIndexDropsDirtyRows(t *testing.T) {
	rows := append(chainRows(),
		models.ChainRow{ChainID: "", Order: "1", CourseCode: "GHOST-1"},
		models.ChainRow{ChainID: "GRAM", Order: "", CourseCode: "GHOST-2"},
		models.ChainRow{ChainID: "GRAM", Order: "n/a", CourseCode: "GHOST-3"},
		models.ChainRow{ChainID: "GRAM", Order: "4", CourseCode: "  "},
	)
	idx := BuildChainIndex(rows)

	require.Equal(t, []string{"CONV", "GRAM"}, idx.ChainIDs())
	assert.Len(t, idx.Chain("GRAM"), 3)
	assert.True(t, idx.IsNextInChain("GHOST-1", nil), "dropped rows must not chain-gate a course")
	assert.True(t, idx.IsNextInChain("GHOST-3", nil))
}

func TestBuildChainIndexSortsAndKeepsDuplicateOrders(t *testing.T) {
	idx := BuildChainIndex(chainRows())

	gram := idx.Chain("GRAM")
	require.Equal(t, []ChainLink{
		{Order: 1, CourseCode: "GRAM-101"},
		{Order: 2, CourseCode: "GRAM-102"},
		{Order: 3, CourseCode: "GRAM-201"},
	}, gram)

	conv := idx.Chain("CONV")
	require.Len(t, conv, 3)
	assert.Equal(t, ChainLink{Order: 2, CourseCode: "CONV-210"}, conv[1], "ties keep input order")
	assert.Equal(t, ChainLink{Order: 2, CourseCode: "GRAM-102"}, conv[2])
}

func TestIsNextInChainUnchainedCourse(t *testing.T) {
	idx := BuildChainIndex(chainRows())
	assert.True(t, idx.IsNextInChain("ELEC-300", nil))
	assert.True(t, idx.IsNextInChain("ELEC-300", map[string]bool{"GRAM-101": true}))
}

func TestIsNextInChainFirstCourse(t *testing.T) {
	idx := BuildChainIndex(chainRows())
	assert.True(t, idx.IsNextInChain("GRAM-101", nil))
	assert.False(t, idx.IsNextInChain("GRAM-102", nil))
	assert.False(t, idx.IsNextInChain("GRAM-201", map[string]bool{"GRAM-101": true}))
}

func TestIsNextInChainToleratesGaps(t *testing.T) {
	idx := BuildChainIndex(chainRows())

	// GRAM-102 was waived; the highest completed order still advances
	// the frontier past it.
	completed := map[string]bool{"GRAM-102": true}
	assert.True(t, idx.IsNextInChain("GRAM-201", completed))
	assert.False(t, idx.IsNextInChain("GRAM-101", completed))
}

func TestIsNextInChainAnyChainUnlocks(t *testing.T) {
	idx := BuildChainIndex(chainRows())

	// GRAM-102 sits at order 2 in both chains. Completing either chain's
	// opener unlocks it.
	assert.True(t, idx.IsNextInChain("GRAM-102", map[string]bool{"CONV-110": true}))
	assert.True(t, idx.IsNextInChain("GRAM-102", map[string]bool{"GRAM-101": true}))
	assert.False(t, idx.IsNextInChain("GRAM-102", map[string]bool{}))
}

func TestEligibleCourses(t *testing.T) {
	idx := BuildChainIndex(chainRows())

	required := []string{"GRAM-101", "GRAM-102", "GRAM-201", "ELEC-300"}
	completed := map[string]bool{"GRAM-101": true}

	assert.Equal(t, []string{"GRAM-102", "ELEC-300"}, idx.EligibleCourses(required, completed))
	assert.Empty(t, idx.EligibleCourses(nil, completed))
}

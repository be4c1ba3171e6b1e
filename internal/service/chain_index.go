package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/noah-isme/course-planner-api/internal/models"
)

// ChainLink is one resolved position inside a prerequisite chain.
type ChainLink struct {
	Order      int    `json:"order"`
	CourseCode string `json:"course_code"`
}

// ChainIndex answers ordering questions over prerequisite chains. It is
// built once per evaluation from the raw catalog rows and is read-only
// afterwards, so it is safe for concurrent use.
type ChainIndex struct {
	chains         map[string][]ChainLink
	courseToChains map[string][]string
}

// BuildChainIndex constructs the index from raw catalog rows. Rows with a
// blank chain id or course code, or a non-integer order, are dropped
// silently. Links inside a chain are sorted by order; duplicate orders are
// kept in input order.
func BuildChainIndex(rows []models.ChainRow) *ChainIndex {
	idx := &ChainIndex{
		chains:         make(map[string][]ChainLink),
		courseToChains: make(map[string][]string),
	}
	for _, row := range rows {
		chainID := strings.TrimSpace(row.ChainID)
		course := strings.TrimSpace(row.CourseCode)
		order, err := strconv.Atoi(strings.TrimSpace(row.Order))
		if chainID == "" || course == "" || err != nil {
			continue
		}
		idx.chains[chainID] = append(idx.chains[chainID], ChainLink{Order: order, CourseCode: course})
	}

	chainIDs := make([]string, 0, len(idx.chains))
	for chainID := range idx.chains {
		chainIDs = append(chainIDs, chainID)
	}
	sort.Strings(chainIDs)

	for _, chainID := range chainIDs {
		links := idx.chains[chainID]
		sort.SliceStable(links, func(i, j int) bool { return links[i].Order < links[j].Order })
		idx.chains[chainID] = links

		seen := make(map[string]bool, len(links))
		for _, link := range links {
			if seen[link.CourseCode] {
				continue
			}
			seen[link.CourseCode] = true
			idx.courseToChains[link.CourseCode] = append(idx.courseToChains[link.CourseCode], chainID)
		}
	}
	return idx
}

// ChainIDs returns every chain id in the index, sorted.
func (x *ChainIndex) ChainIDs() []string {
	ids := make([]string, 0, len(x.chains))
	for id := range x.chains {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Chain returns the ordered links of one chain, or nil when unknown.
func (x *ChainIndex) Chain(chainID string) []ChainLink {
	return x.chains[chainID]
}

// IsNextInChain reports whether a course is unlockable given the set of
// completed course codes. Courses that belong to no chain are always
// unlockable. A chained course unlocks when its order is exactly one past
// the highest completed order in that chain, in any of the chains it
// belongs to. Using the highest completed order tolerates gaps left by
// transfer credit and waived prerequisites.
func (x *ChainIndex) IsNextInChain(courseCode string, completed map[string]bool) bool {
	chainIDs, tracked := x.courseToChains[courseCode]
	if !tracked {
		return true
	}
	for _, chainID := range chainIDs {
		links := x.chains[chainID]
		maxDone := 0
		for _, link := range links {
			if completed[link.CourseCode] && link.Order > maxDone {
				maxDone = link.Order
			}
		}
		for _, link := range links {
			if link.CourseCode == courseCode && link.Order == maxDone+1 {
				return true
			}
		}
	}
	return false
}

// EligibleCourses filters the required course list down to courses the
// student still needs and can take now. Input order is preserved.
func (x *ChainIndex) EligibleCourses(required []string, completed map[string]bool) []string {
	eligible := make([]string, 0, len(required))
	for _, course := range required {
		if completed[course] {
			continue
		}
		if x.IsNextInChain(course, completed) {
			eligible = append(eligible, course)
		}
	}
	return eligible
}

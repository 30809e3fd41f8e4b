package store

import (
	"sort"

	"github.com/frdeange/apitoolsnetworking/internal/models"
)

// CaseHistory answers "resolved cases for a location-type category".
type CaseHistory struct {
	cases []models.Case
}

// NewCaseHistory builds a history over the supplied cases.
func NewCaseHistory(cases []models.Case) *CaseHistory {
	return &CaseHistory{cases: append([]models.Case(nil), cases...)}
}

// Find returns cases matching the location type exactly, ordered by success
// rate descending (load order breaks ties, keeping results deterministic).
// A zero location type returns every case.
func (h *CaseHistory) Find(locationType models.LocationType) []models.Case {
	matched := make([]models.Case, 0, len(h.cases))
	for _, c := range h.cases {
		if locationType != "" && c.LocationType != locationType {
			continue
		}
		matched = append(matched, c)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SuccessRate > matched[j].SuccessRate
	})
	return matched
}

// Len reports the number of cases in the history.
func (h *CaseHistory) Len() int { return len(h.cases) }

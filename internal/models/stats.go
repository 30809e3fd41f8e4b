package models

// CaseStats summarises the resolved-case history for one location type.
type CaseStats struct {
	LocationType       LocationType `json:"location_type"`
	CaseCount          int          `json:"case_count"`
	AvgResolutionHours float64      `json:"avg_resolution_hours"`
	MeanSuccessRate    float64      `json:"mean_success_rate"`
	TopRootCauses      []string     `json:"top_root_causes"`
}

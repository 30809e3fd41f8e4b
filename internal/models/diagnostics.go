package models

// DiagnosticRequest carries one connectivity complaint into the aggregator.
// Location is required at the boundary but an explicit empty string is legal
// and degenerates every location filter to match-all.
type DiagnosticRequest struct {
	Location          string   `json:"location"`
	IssueType         string   `json:"issue_type,omitempty"`
	Symptoms          []string `json:"symptoms,omitempty"`
	NetworkTechnology string   `json:"network_technology,omitempty"`
}

// DiagnosticResult is the composite answer for one diagnostic request. The
// five lists always appear in the fixed order sites, incidents, maintenance,
// cases, products; callers may rely on that ordering.
type DiagnosticResult struct {
	ContextFound         bool                `json:"context_found"`
	CellSitesNearby      []Site              `json:"cell_sites_nearby"`
	ActiveIncidents      []Incident          `json:"active_incidents"`
	ScheduledMaintenance []MaintenanceWindow `json:"scheduled_maintenance"`
	SimilarCases         []Case              `json:"similar_cases"`
	RecommendedProducts  []Product           `json:"recommended_products"`
	AdditionalContext    string              `json:"additional_context"`
}

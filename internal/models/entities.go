package models

import "time"

// NetworkTechnology labels a radio access technology served by a site.
type NetworkTechnology string

const (
	TechnologyLTE   NetworkTechnology = "4G"
	Technology5GNSA NetworkTechnology = "5G NSA"
	Technology5GSA  NetworkTechnology = "5G SA"
	TechnologyVoLTE NetworkTechnology = "VoLTE"
)

// SiteStatus captures the operational state of a cell site.
type SiteStatus string

const (
	SiteStatusActive   SiteStatus = "active"
	SiteStatusInactive SiteStatus = "inactive"
	SiteStatusDegraded SiteStatus = "degraded"
)

// Severity captures incident impact levels.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ParseSeverity validates a severity label. Empty input is legal and means "no filter".
func ParseSeverity(value string) (Severity, bool) {
	switch Severity(value) {
	case "", SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return Severity(value), true
	}
	return "", false
}

// IncidentStatus tracks the lifecycle of an active incident.
type IncidentStatus string

const (
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentInProgress    IncidentStatus = "in_progress"
	IncidentResolved      IncidentStatus = "resolved"
)

// IssueType tags the class of network problem a customer reports.
type IssueType string

const (
	IssueCoverage     IssueType = "coverage"
	IssueSpeed        IssueType = "speed"
	IssueLatency      IssueType = "latency"
	IssueInterference IssueType = "interference"
	IssueHandover     IssueType = "handover"
	IssueCallDrop     IssueType = "call_drop"
)

// LocationType buckets resolved cases by environment.
type LocationType string

const (
	LocationUrban       LocationType = "urban"
	LocationIndustrial  LocationType = "industrial"
	LocationHighway     LocationType = "highway"
	LocationUnderground LocationType = "underground"
)

// ParseLocationType validates a location-type label. Empty input means "no filter".
func ParseLocationType(value string) (LocationType, bool) {
	switch LocationType(value) {
	case "", LocationUrban, LocationIndustrial, LocationHighway, LocationUnderground:
		return LocationType(value), true
	}
	return "", false
}

// ProductCategory groups catalog entries by the class of problem they address.
type ProductCategory string

const (
	CategoryAIAgents   ProductCategory = "AI Agents"
	CategoryAIProducts ProductCategory = "AI Products"
	CategoryDataFabric ProductCategory = "Data Fabric"
)

// ParseProductCategory validates a category label. Empty input means "no filter".
func ParseProductCategory(value string) (ProductCategory, bool) {
	switch ProductCategory(value) {
	case "", CategoryAIAgents, CategoryAIProducts, CategoryDataFabric:
		return ProductCategory(value), true
	}
	return "", false
}

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Site describes a physical cell installation.
type Site struct {
	SiteID           string              `json:"site_id" yaml:"site_id"`
	SiteName         string              `json:"site_name" yaml:"site_name"`
	Location         string              `json:"location" yaml:"location"`
	Technologies     []NetworkTechnology `json:"technologies" yaml:"technologies"`
	Sectors          int                 `json:"sectors" yaml:"sectors"`
	Status           SiteStatus          `json:"status" yaml:"status"`
	CoverageRadiusKm float64             `json:"coverage_radius_km" yaml:"coverage_radius_km"`
	Coordinates      Coordinate          `json:"coordinates" yaml:"coordinates"`
}

// Incident describes an active or recently active network fault.
type Incident struct {
	IncidentID          string         `json:"incident_id" yaml:"incident_id"`
	IssueType           IssueType      `json:"issue_type" yaml:"issue_type"`
	AffectedArea        string         `json:"affected_area" yaml:"affected_area"`
	AffectedSites       []string       `json:"affected_sites" yaml:"affected_sites"`
	Severity            Severity       `json:"severity" yaml:"severity"`
	StartTime           time.Time      `json:"start_time" yaml:"start_time"`
	EstimatedResolution *time.Time     `json:"estimated_resolution" yaml:"estimated_resolution"`
	Status              IncidentStatus `json:"status" yaml:"status"`
	Description         string         `json:"description" yaml:"description"`
	AffectedCustomers   int            `json:"affected_customers" yaml:"affected_customers"`
}

// MaintenanceWindow describes a scheduled, time-bounded operation. A window is
// "active" when the evaluation instant falls within [ScheduledStart, ScheduledEnd];
// activity is derived, never stored.
type MaintenanceWindow struct {
	MaintenanceID    string    `json:"maintenance_id" yaml:"maintenance_id"`
	AffectedArea     string    `json:"affected_area" yaml:"affected_area"`
	Sites            []string  `json:"sites" yaml:"sites"`
	ScheduledStart   time.Time `json:"scheduled_start" yaml:"scheduled_start"`
	ScheduledEnd     time.Time `json:"scheduled_end" yaml:"scheduled_end"`
	Description      string    `json:"description" yaml:"description"`
	Impact           string    `json:"impact" yaml:"impact"`
	AffectedServices []string  `json:"affected_services" yaml:"affected_services"`
	NotificationSent bool      `json:"notification_sent" yaml:"notification_sent"`
}

// Case is a historical resolved incident retained as a reference solution.
type Case struct {
	CaseID              string       `json:"case_id" yaml:"case_id"`
	IssueDescription    string       `json:"issue_description" yaml:"issue_description"`
	RootCause           string       `json:"root_cause" yaml:"root_cause"`
	SolutionApplied     string       `json:"solution_applied" yaml:"solution_applied"`
	ResolutionTimeHours float64      `json:"resolution_time_hours" yaml:"resolution_time_hours"`
	SuccessRate         float64      `json:"success_rate" yaml:"success_rate"`
	LocationType        LocationType `json:"location_type" yaml:"location_type"`
}

// Product is a catalog entry describing a vendor offering.
type Product struct {
	ProductName string          `json:"product_name" yaml:"product_name"`
	Category    ProductCategory `json:"category" yaml:"category"`
	Description string          `json:"description" yaml:"description"`
	UseCases    []string        `json:"use_cases" yaml:"use_cases"`
	Benefits    []string        `json:"benefits" yaml:"benefits"`
	URL         string          `json:"url" yaml:"url"`
}

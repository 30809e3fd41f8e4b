package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/frdeange/apitoolsnetworking/internal/models"
	"github.com/frdeange/apitoolsnetworking/internal/utils"
)

// Dataset bundles the five immutable collections loaded at process start.
type Dataset struct {
	Sites       []models.Site              `yaml:"sites"`
	Incidents   []models.Incident          `yaml:"incidents"`
	Maintenance []models.MaintenanceWindow `yaml:"maintenance"`
	Cases       []models.Case              `yaml:"cases"`
	Products    []models.Product           `yaml:"products"`
}

// Load reads a dataset from a YAML file and validates it. Timestamps in the
// file are RFC3339. A malformed dataset is a startup failure, never a
// per-request one.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.NewAppError("dataset.load", fmt.Sprintf("read %s", path), err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, utils.NewAppError("dataset.load", fmt.Sprintf("parse %s", path), err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate enforces the static-data invariants: unique site identifiers,
// recognised enum labels, ordered maintenance windows, case rates in range
// and non-negative counters.
func (d *Dataset) Validate() error {
	seen := make(map[string]struct{}, len(d.Sites))
	for _, s := range d.Sites {
		if s.SiteID == "" {
			return invalid("site with empty site_id")
		}
		if _, dup := seen[s.SiteID]; dup {
			return invalid(fmt.Sprintf("duplicate site_id %q", s.SiteID))
		}
		seen[s.SiteID] = struct{}{}
		switch s.Status {
		case models.SiteStatusActive, models.SiteStatusInactive, models.SiteStatusDegraded:
		default:
			return invalid(fmt.Sprintf("site %s: unknown status %q", s.SiteID, s.Status))
		}
	}
	for _, inc := range d.Incidents {
		if inc.IncidentID == "" {
			return invalid("incident with empty incident_id")
		}
		if _, ok := models.ParseSeverity(string(inc.Severity)); !ok || inc.Severity == "" {
			return invalid(fmt.Sprintf("incident %s: unknown severity %q", inc.IncidentID, inc.Severity))
		}
		if inc.AffectedCustomers < 0 {
			return invalid(fmt.Sprintf("incident %s: negative affected_customers", inc.IncidentID))
		}
	}
	for _, w := range d.Maintenance {
		if w.MaintenanceID == "" {
			return invalid("maintenance window with empty maintenance_id")
		}
		if w.ScheduledEnd.Before(w.ScheduledStart) {
			return invalid(fmt.Sprintf("maintenance %s: scheduled_end before scheduled_start", w.MaintenanceID))
		}
	}
	for _, c := range d.Cases {
		if c.CaseID == "" {
			return invalid("case with empty case_id")
		}
		if _, ok := models.ParseLocationType(string(c.LocationType)); !ok || c.LocationType == "" {
			return invalid(fmt.Sprintf("case %s: unknown location_type %q", c.CaseID, c.LocationType))
		}
		if c.SuccessRate < 0 || c.SuccessRate > 1 {
			return invalid(fmt.Sprintf("case %s: success_rate outside [0,1]", c.CaseID))
		}
		if c.ResolutionTimeHours < 0 {
			return invalid(fmt.Sprintf("case %s: negative resolution_time_hours", c.CaseID))
		}
	}
	for _, p := range d.Products {
		if p.ProductName == "" {
			return invalid("product with empty product_name")
		}
		if _, ok := models.ParseProductCategory(string(p.Category)); !ok || p.Category == "" {
			return invalid(fmt.Sprintf("product %q: unknown category %q", p.ProductName, p.Category))
		}
	}
	return nil
}

func invalid(msg string) error {
	return utils.NewAppError("dataset.validate", msg, nil)
}

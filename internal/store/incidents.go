package store

import (
	"github.com/frdeange/apitoolsnetworking/internal/models"
	"github.com/frdeange/apitoolsnetworking/internal/normalize"
)

// IncidentRegistry answers "incidents matching location and/or severity".
type IncidentRegistry struct {
	incidents []incidentEntry
}

type incidentEntry struct {
	incident models.Incident
	area     string // normalized affected area
}

// NewIncidentRegistry builds a registry over the supplied incidents,
// preserving their order.
func NewIncidentRegistry(incidents []models.Incident) *IncidentRegistry {
	entries := make([]incidentEntry, 0, len(incidents))
	for _, inc := range incidents {
		entries = append(entries, incidentEntry{incident: inc, area: normalize.Location(inc.AffectedArea)})
	}
	return &IncidentRegistry{incidents: entries}
}

// Find returns incidents whose normalized affected area relates to the query
// location and whose severity matches exactly. Both filters are optional and
// conjunctive; zero values disable them.
func (r *IncidentRegistry) Find(location string, severity models.Severity) []models.Incident {
	query := normalize.Location(location)
	matched := make([]models.Incident, 0, len(r.incidents))
	for _, entry := range r.incidents {
		if !normalize.Matches(entry.area, query) {
			continue
		}
		if severity != "" && entry.incident.Severity != severity {
			continue
		}
		matched = append(matched, entry.incident)
	}
	return matched
}

// Len reports the number of incidents in the registry.
func (r *IncidentRegistry) Len() int { return len(r.incidents) }

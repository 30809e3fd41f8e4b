package store

import (
	"testing"
	"time"

	"github.com/frdeange/apitoolsnetworking/internal/models"
)

func TestIncidentRegistryFind(t *testing.T) {
	reg := NewIncidentRegistry(Seed(time.Now().UTC()).Incidents)

	tests := []struct {
		name     string
		location string
		severity models.Severity
		want     []string
	}{
		{"no filters returns everything", "", "", []string{"INC-2024-1142", "INC-2024-1138"}},
		{"location filter", "valencia", "", []string{"INC-2024-1142"}},
		{"severity filter", "", models.SeverityMedium, []string{"INC-2024-1138"}},
		{"conjunctive filters", "paterna", models.SeverityMedium, []string{"INC-2024-1138"}},
		{"conjunctive filters exclude", "paterna", models.SeverityHigh, []string{}},
		{"severity is exact not minimum", "", models.SeverityLow, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := reg.Find(tc.location, tc.severity)
			if len(got) != len(tc.want) {
				t.Fatalf("Find(%q, %q) returned %d incidents, want %d", tc.location, tc.severity, len(got), len(tc.want))
			}
			for i := range got {
				if got[i].IncidentID != tc.want[i] {
					t.Fatalf("Find(%q, %q)[%d] = %s, want %s", tc.location, tc.severity, i, got[i].IncidentID, tc.want[i])
				}
			}
		})
	}
}

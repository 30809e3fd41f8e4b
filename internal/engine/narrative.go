package engine

import (
	"fmt"
	"strings"

	"github.com/frdeange/apitoolsnetworking/internal/models"
)

// noContextNarrative is returned when neither sites nor incidents matched.
const noContextNarrative = "No additional context available."

// incidentDescriptionLimit bounds the description excerpt per incident line.
const incidentDescriptionLimit = 150

// Narrative renders the deterministic human-readable summary for a
// diagnostic result. Only matched sites and incidents are narrated;
// maintenance, cases and products are reported through the structured
// fields. Callers needing structured answers must not parse this string.
func Narrative(sites []models.Site, incidents []models.Incident) string {
	var lines []string

	if len(sites) > 0 {
		ids := make([]string, 0, len(sites))
		for _, s := range sites {
			ids = append(ids, s.SiteID)
		}
		lines = append(lines, fmt.Sprintf("There are %d sites in the area: %s", len(sites), strings.Join(ids, ", ")))
	}

	if len(incidents) > 0 {
		lines = append(lines, fmt.Sprintf("WARNING: There are %d active incidents in the area", len(incidents)))
		for _, inc := range incidents {
			lines = append(lines, fmt.Sprintf("  - %s: %s...", inc.IncidentID, excerpt(inc.Description, incidentDescriptionLimit)))
		}
	}

	if len(lines) == 0 {
		return noContextNarrative
	}
	return strings.Join(lines, "\n")
}

func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

package store

import (
	"time"

	"github.com/frdeange/apitoolsnetworking/internal/models"
)

// Seed returns the built-in demo dataset used when no dataset file is
// configured. Incident and maintenance timestamps are anchored to the
// supplied instant so the "active" windows behave sensibly from boot.
func Seed(now time.Time) *Dataset {
	inc1142Resolution := now.Add(6 * time.Hour)
	inc1138Resolution := now.Add(48 * time.Hour)

	return &Dataset{
		Sites: []models.Site{
			{
				SiteID:           "VLC-001",
				SiteName:         "Valencia Centro - Ayuntamiento",
				Location:         "Plaza del Ayuntamiento, Valencia",
				Technologies:     []models.NetworkTechnology{models.TechnologyLTE, models.Technology5GNSA, models.Technology5GSA},
				Sectors:          3,
				Status:           models.SiteStatusActive,
				CoverageRadiusKm: 1.2,
				Coordinates:      models.Coordinate{Lat: 39.4699, Lon: -0.3763},
			},
			{
				SiteID:           "VLC-002",
				SiteName:         "Valencia Centro - Xàtiva",
				Location:         "Calle Xàtiva, Valencia",
				Technologies:     []models.NetworkTechnology{models.TechnologyLTE, models.Technology5GNSA},
				Sectors:          3,
				Status:           models.SiteStatusDegraded,
				CoverageRadiusKm: 0.8,
				Coordinates:      models.Coordinate{Lat: 39.4665, Lon: -0.3769},
			},
			{
				SiteID:           "VLC-003",
				SiteName:         "Valencia Centro - Colón",
				Location:         "Plaza de Colón, Valencia",
				Technologies:     []models.NetworkTechnology{models.TechnologyLTE, models.Technology5GNSA, models.Technology5GSA},
				Sectors:          3,
				Status:           models.SiteStatusActive,
				CoverageRadiusKm: 1.5,
				Coordinates:      models.Coordinate{Lat: 39.4731, Lon: -0.3719},
			},
			{
				SiteID:           "PTR-001",
				SiteName:         "Paterna Polígono Industrial",
				Location:         "Polígono Industrial Vara de Quart, Paterna",
				Technologies:     []models.NetworkTechnology{models.TechnologyLTE, models.Technology5GNSA},
				Sectors:          3,
				Status:           models.SiteStatusActive,
				CoverageRadiusKm: 2.0,
				Coordinates:      models.Coordinate{Lat: 39.5167, Lon: -0.45},
			},
			{
				SiteID:           "PTR-002",
				SiteName:         "Paterna Centro Tecnológico",
				Location:         "Parc Tecnològic, Paterna",
				Technologies:     []models.NetworkTechnology{models.TechnologyLTE, models.Technology5GNSA, models.Technology5GSA},
				Sectors:          3,
				Status:           models.SiteStatusActive,
				CoverageRadiusKm: 1.8,
				Coordinates:      models.Coordinate{Lat: 39.52, Lon: -0.445},
			},
			{
				SiteID:           "MAD-A3-280",
				SiteName:         "A3 Autovía - KM 280",
				Location:         "Autovía A3, KM 280",
				Technologies:     []models.NetworkTechnology{models.TechnologyLTE, models.TechnologyVoLTE},
				Sectors:          3,
				Status:           models.SiteStatusActive,
				CoverageRadiusKm: 3.5,
				Coordinates:      models.Coordinate{Lat: 39.75, Lon: -1.2},
			},
			{
				SiteID:           "BCN-M01",
				SiteName:         "Barcelona Metro L1 - Arc Triomf",
				Location:         "Metro L1, Estación Arc de Triomf",
				Technologies:     []models.NetworkTechnology{models.TechnologyLTE, models.TechnologyVoLTE},
				Sectors:          2,
				Status:           models.SiteStatusActive,
				CoverageRadiusKm: 0.3,
				Coordinates:      models.Coordinate{Lat: 41.3908, Lon: 2.1808},
			},
		},
		Incidents: []models.Incident{
			{
				IncidentID:          "INC-2024-1142",
				IssueType:           models.IssueInterference,
				AffectedArea:        "Valencia Centro - Plaza Ayuntamiento",
				AffectedSites:       []string{"VLC-001", "VLC-002"},
				Severity:            models.SeverityHigh,
				StartTime:           now.Add(-18 * time.Hour),
				EstimatedResolution: &inc1142Resolution,
				Status:              models.IncidentInProgress,
				Description:         "PCI conflict detected between site VLC-001 sector 2 and VLC-002 sector 1 causing co-channel interference on the 5G NSA band. Anomaly detection has identified overshooting on VLC-002.",
				AffectedCustomers:   1250,
			},
			{
				IncidentID:          "INC-2024-1138",
				IssueType:           models.IssueCoverage,
				AffectedArea:        "Paterna - Polígono Industrial Vara de Quart",
				AffectedSites:       []string{"PTR-001"},
				Severity:            models.SeverityMedium,
				StartTime:           now.Add(-7 * 24 * time.Hour),
				EstimatedResolution: &inc1138Resolution,
				Status:              models.IncidentInvestigating,
				Description:         "Gradual 5G signal degradation detected by geolocation analytics. Virtual drive test analysis shows a 10 dBm RSRP drop over the last week. Probable antenna tilt misconfiguration.",
				AffectedCustomers:   450,
			},
		},
		Maintenance: []models.MaintenanceWindow{
			{
				MaintenanceID:    "MAINT-2024-0891",
				AffectedArea:     "Valencia Centro",
				Sites:            []string{"VLC-002"},
				ScheduledStart:   now.Add(-20 * time.Hour),
				ScheduledEnd:     now.Add(4 * time.Hour),
				Description:      "Software upgrade + antenna optimization",
				Impact:           "Possible intermittent 5G NSA outages, 4G fallback available",
				AffectedServices: []string{"5G NSA"},
				NotificationSent: true,
			},
		},
		Cases: []models.Case{
			{
				CaseID:              "CASE-5G-0782",
				IssueDescription:    "5G coverage loss in urban area with fallback to 4G",
				RootCause:           "PCI conflict between two nearby sites after a network expansion. Overshooting from a freshly installed antenna.",
				SolutionApplied:     "Mechanical tilt adjustment of -2 degrees on site VLC-002 sector 1 plus PCI reconfiguration from 156 to 289. MLB optimisation for load balancing.",
				ResolutionTimeHours: 8.5,
				SuccessRate:         0.98,
				LocationType:        models.LocationUrban,
			},
			{
				CaseID:              "CASE-5G-0654",
				IssueDescription:    "Constant 5G signal fluctuation in an industrial park",
				RootCause:           "External interference from a weather radar on band n78 (3.5 GHz). Interference detection identified a periodic pattern every 12 seconds.",
				SolutionApplied:     "Carrier aggregation reconfigured to avoid the affected frequencies. Adaptive filtering enabled. Escalated to the telecoms authority for frequency coordination.",
				ResolutionTimeHours: 72.0,
				SuccessRate:         0.92,
				LocationType:        models.LocationIndustrial,
			},
			{
				CaseID:              "CASE-4G-1023",
				IssueDescription:    "Low data throughput on a highway, calls fine but data slow",
				RootCause:           "Backhaul congestion on site A3-KM280. Microwave link saturated at peak hours (95% utilisation). Gradual degradation pattern detected.",
				SolutionApplied:     "Backhaul upgrade from 1 Gbps to 10 Gbps fiber. QoS on the S1 interface. Carrier aggregation enabled to offload to an additional band.",
				ResolutionTimeHours: 120.0,
				SuccessRate:         1.0,
				LocationType:        models.LocationHighway,
			},
			{
				CaseID:              "CASE-VLT-0445",
				IssueDescription:    "Dropped calls in metro and tunnels",
				RootCause:           "Handover failure between an outdoor macro cell and an indoor DAS system. Misconfigured A3 event offset. RLF rate above 15%.",
				SolutionApplied:     "Neighbor list optimisation, A3 offset adjusted from 3 dB to 1 dB, TTT reduced from 320 ms to 160 ms. CS fallback optimisation enabled.",
				ResolutionTimeHours: 12.0,
				SuccessRate:         0.95,
				LocationType:        models.LocationUnderground,
			},
		},
		Products: []models.Product{
			{
				ProductName: "Kenmei AI Agents - Anomaly Detection",
				Category:    models.CategoryAIAgents,
				Description: "Automatic anomaly detection for mobile networks using machine learning. Flags abnormal KPI patterns before customers are affected.",
				UseCases: []string{
					"Early detection of coverage degradation",
					"Interference identification (PCI conflicts, RSI)",
					"Handover failure prediction",
					"Automatic network congestion alerts",
				},
				Benefits: []string{
					"Reduces MTTR by 60%",
					"Detects problems 24-48h earlier than traditional methods",
					"Automates 70% of first-level diagnostics",
				},
				URL: "https://www.kenmei.ai/solutions/ai-products/anomalies",
			},
			{
				ProductName: "Kenmei Geolocation - Virtual Drive Testing",
				Category:    models.CategoryAIProducts,
				Description: "Turns real user data into geo-located network quality analysis. Removes the need for physical drive tests.",
				UseCases: []string{
					"5G rollout validation without drive-testing cost",
					"Real-time coverage heat maps",
					"Route analysis (roads, rail, metro)",
					"Indoor coverage optimisation",
				},
				Benefits: []string{
					"Cuts drive-testing cost by 80%",
					"100x the coverage of a manual drive test",
					"Continuously refreshed data instead of snapshots",
				},
				URL: "https://www.kenmei.ai/solutions/ai-products/geolocation",
			},
			{
				ProductName: "Kenmei Telco Fabric",
				Category:    models.CategoryDataFabric,
				Description: "Unifies radio, core and operations data into a single query-ready layer. Removes data silos between vendors.",
				UseCases: []string{
					"Event correlation between RAN and core",
					"Cross-vendor queries in seconds",
					"Unified multi-technology KPI dashboards",
					"Telco data lake with a semantic layer",
				},
				Benefits: []string{
					"Cuts troubleshooting time from hours to minutes",
					"Removes 80% of manual log correlation work",
					"Enables AI on top of unified data",
				},
				URL: "https://www.kenmei.ai/solutions/telco-fabric",
			},
			{
				ProductName: "Kenmei Interference Detection",
				Category:    models.CategoryAIProducts,
				Description: "Automatically detects and diagnoses interference in mobile networks (PCI conflicts, inter-cell, external).",
				UseCases: []string{
					"PCI conflict detection during 5G rollout",
					"External interference identification (radar, military)",
					"Inter-cell interference analysis",
					"Automatic neighbor list optimisation",
				},
				Benefits: []string{
					"Identifies over 95% of interference automatically",
					"Recommends specific corrective actions",
					"Integrates with Telco Fabric for multi-layer analysis",
				},
				URL: "https://www.kenmei.ai/solutions/ai-products/interference",
			},
		},
	}
}

package engine

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/frdeange/apitoolsnetworking/internal/models"
	"github.com/frdeange/apitoolsnetworking/internal/normalize"
)

// similarCaseLimit caps the advisory case list at the most successful matches.
const similarCaseLimit = 3

// SiteFinder answers "sites whose location relates to X".
type SiteFinder interface {
	Near(location string) []models.Site
}

// IncidentFinder answers "incidents matching location and/or severity".
type IncidentFinder interface {
	Find(location string, severity models.Severity) []models.Incident
}

// MaintenanceFinder answers "windows active at an instant" or "all windows".
type MaintenanceFinder interface {
	Windows(at time.Time, activeOnly bool) []models.MaintenanceWindow
}

// CaseFinder answers "resolved cases for a location-type category".
type CaseFinder interface {
	Find(locationType models.LocationType) []models.Case
}

// ProductFinder answers "products in a category".
type ProductFinder interface {
	Find(category models.ProductCategory) []models.Product
}

// Aggregator correlates the five knowledge stores for a single diagnostic
// request. It holds no cross-request state; over well-formed input Analyze
// is a total function and cannot fail.
type Aggregator struct {
	logger      *slog.Logger
	sites       SiteFinder
	incidents   IncidentFinder
	maintenance MaintenanceFinder
	cases       CaseFinder
	products    ProductFinder
	recommender *Recommender
	now         func() time.Time
}

// NewAggregator constructs the diagnostic aggregator. now supplies the
// evaluation instant for maintenance activity; nil defaults to time.Now.
func NewAggregator(
	logger *slog.Logger,
	sites SiteFinder,
	incidents IncidentFinder,
	maintenance MaintenanceFinder,
	cases CaseFinder,
	products ProductFinder,
	recommender *Recommender,
	now func() time.Time,
) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Aggregator{
		logger:      logger,
		sites:       sites,
		incidents:   incidents,
		maintenance: maintenance,
		cases:       cases,
		products:    products,
		recommender: recommender,
		now:         now,
	}
}

// Analyze runs the composite diagnostic flow: normalize the location once,
// query the five stores, merge the results in the fixed order sites,
// incidents, maintenance, cases, products, and attach the narrative.
func (a *Aggregator) Analyze(ctx context.Context, req models.DiagnosticRequest) models.DiagnosticResult {
	location := normalize.Location(req.Location)
	at := a.now().UTC()

	locationType, _ := a.recommender.LocationType(location, req.Symptoms, req.NetworkTechnology)
	category, recommend := a.recommender.ProductCategory(req.IssueType)

	a.logger.Debug("diagnostic analysis",
		slog.String("location", location),
		slog.String("issue_type", req.IssueType),
		slog.String("case_bucket", string(locationType)),
		slog.Time("evaluated_at", at),
	)

	var (
		sites       []models.Site
		incidents   []models.Incident
		maintenance []models.MaintenanceWindow
		cases       []models.Case
		products    = []models.Product{}
	)

	// The five queries are independent and infallible; the errgroup is used
	// for the fan-out and context plumbing only. The merge order below is
	// fixed regardless of completion order.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		sites = a.sites.Near(location)
		return nil
	})
	g.Go(func() error {
		incidents = a.incidents.Find(location, "")
		return nil
	})
	g.Go(func() error {
		maintenance = a.maintenance.Windows(at, true)
		return nil
	})
	g.Go(func() error {
		cases = a.cases.Find(locationType)
		return nil
	})
	g.Go(func() error {
		if recommend {
			products = a.products.Find(category)
		}
		return nil
	})
	_ = g.Wait()

	if len(cases) > similarCaseLimit {
		cases = cases[:similarCaseLimit]
	}

	return models.DiagnosticResult{
		ContextFound:         len(sites) > 0 || len(incidents) > 0 || len(maintenance) > 0 || len(cases) > 0 || len(products) > 0,
		CellSitesNearby:      sites,
		ActiveIncidents:      incidents,
		ScheduledMaintenance: maintenance,
		SimilarCases:         cases,
		RecommendedProducts:  products,
		AdditionalContext:    Narrative(sites, incidents),
	}
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/frdeange/apitoolsnetworking/internal/cache"
	"github.com/frdeange/apitoolsnetworking/internal/casestats"
	"github.com/frdeange/apitoolsnetworking/internal/engine"
	"github.com/frdeange/apitoolsnetworking/internal/metrics"
	"github.com/frdeange/apitoolsnetworking/internal/models"
	"github.com/frdeange/apitoolsnetworking/internal/store"
	"github.com/frdeange/apitoolsnetworking/internal/utils"
)

// KnowledgeService fronts the five stores and the diagnostic aggregator for
// the HTTP boundary, adding metrics, latency tracking and an optional
// response cache. It owns no mutable state beyond those concerns.
type KnowledgeService struct {
	logger      *slog.Logger
	sites       *store.SiteDirectory
	incidents   *store.IncidentRegistry
	maintenance *store.MaintenanceSchedule
	cases       *store.CaseHistory
	products    *store.ProductCatalog
	aggregator  *engine.Aggregator
	stats       *casestats.Summarizer
	cache       cache.Provider
	cacheTTL    time.Duration
	latencies   *utils.LatencyTracker
}

// NewKnowledgeService constructs the service facade. cacheProvider may be nil
// to disable response caching.
func NewKnowledgeService(
	logger *slog.Logger,
	sites *store.SiteDirectory,
	incidents *store.IncidentRegistry,
	maintenance *store.MaintenanceSchedule,
	cases *store.CaseHistory,
	products *store.ProductCatalog,
	aggregator *engine.Aggregator,
	cacheProvider cache.Provider,
	cacheTTL time.Duration,
) *KnowledgeService {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheProvider == nil {
		cacheProvider = cache.NoopProvider{}
	}
	return &KnowledgeService{
		logger:      logger,
		sites:       sites,
		incidents:   incidents,
		maintenance: maintenance,
		cases:       cases,
		products:    products,
		aggregator:  aggregator,
		stats:       casestats.NewSummarizer(logger),
		cache:       cacheProvider,
		cacheTTL:    cacheTTL,
		latencies:   utils.NewLatencyTracker(1024),
	}
}

// Sites returns sites related to a location; empty location means all.
func (s *KnowledgeService) Sites(location string) []models.Site {
	metrics.ObserveLookup("sites")
	return s.sites.Near(location)
}

// Incidents returns incidents filtered by location and/or severity.
func (s *KnowledgeService) Incidents(location string, severity models.Severity) []models.Incident {
	metrics.ObserveLookup("incidents")
	return s.incidents.Find(location, severity)
}

// Maintenance returns maintenance windows, optionally only those active at
// the evaluation instant.
func (s *KnowledgeService) Maintenance(at time.Time, activeOnly bool) []models.MaintenanceWindow {
	metrics.ObserveLookup("maintenance")
	return s.maintenance.Windows(at, activeOnly)
}

// Cases returns resolved cases for a location type; zero means all.
func (s *KnowledgeService) Cases(locationType models.LocationType) []models.Case {
	metrics.ObserveLookup("cases")
	return s.cases.Find(locationType)
}

// Products returns catalog entries for a category; zero means all.
func (s *KnowledgeService) Products(category models.ProductCategory) []models.Product {
	metrics.ObserveLookup("products")
	return s.products.Find(category)
}

// CaseStats returns per-location-type summaries over the full case history.
func (s *KnowledgeService) CaseStats() []models.CaseStats {
	metrics.ObserveLookup("case_stats")
	return s.stats.Summarize(s.cases.Find(""))
}

// Analyze runs the composite diagnostic flow for a well-formed request,
// consulting the response cache first. The underlying aggregator cannot
// fail; cache trouble only costs the shortcut.
func (s *KnowledgeService) Analyze(ctx context.Context, req models.DiagnosticRequest) models.DiagnosticResult {
	key := cacheKey(req)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var result models.DiagnosticResult
		if err := json.Unmarshal(cached, &result); err == nil {
			metrics.ObserveDiagnostic(0, metrics.OutcomeCached)
			return result
		}
		// A poisoned entry should not survive; recompute below.
		_ = s.cache.Del(ctx, key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("response cache read failed", slog.Any("error", err))
	}

	start := time.Now()
	result := s.aggregator.Analyze(ctx, req)
	duration := time.Since(start)

	s.latencies.Observe(duration)
	metrics.ObserveDiagnostic(duration, metrics.OutcomeOK)
	if count := s.latencies.Count(); count >= 20 && count%20 == 0 {
		p95 := s.latencies.Percentile(95)
		s.logger.Info("diagnostic latency", slog.Duration("p95", p95), slog.Int("samples", count))
	}

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
			s.logger.Warn("response cache write failed", slog.Any("error", err))
		}
	}

	return result
}

// LatencyP95 returns the current p95 diagnostic latency.
func (s *KnowledgeService) LatencyP95() time.Duration {
	if s.latencies == nil {
		return 0
	}
	return s.latencies.Percentile(95)
}

// cacheKey fingerprints a diagnostic request. The maintenance "active"
// evaluation drifts within the cache TTL; that staleness bound is the
// documented tradeoff for the shortcut.
func cacheKey(req models.DiagnosticRequest) string {
	parts := []string{
		"diag",
		req.Location,
		req.IssueType,
		strings.Join(req.Symptoms, ","),
		req.NetworkTechnology,
	}
	return strings.Join(parts, "|")
}

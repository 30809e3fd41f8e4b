package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frdeange/apitoolsnetworking/internal/engine"
	"github.com/frdeange/apitoolsnetworking/internal/models"
	"github.com/frdeange/apitoolsnetworking/internal/services"
	"github.com/frdeange/apitoolsnetworking/internal/store"
)

var testClock = time.Date(2024, 11, 4, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ds := store.Seed(testClock)
	sites := store.NewSiteDirectory(ds.Sites)
	incidents := store.NewIncidentRegistry(ds.Incidents)
	maintenance := store.NewMaintenanceSchedule(ds.Maintenance)
	cases := store.NewCaseHistory(ds.Cases)
	products := store.NewProductCatalog(ds.Products)

	recommender, err := engine.NewRecommender("", nil)
	if err != nil {
		t.Fatalf("NewRecommender: %v", err)
	}
	agg := engine.NewAggregator(nil, sites, incidents, maintenance, cases, products, recommender,
		func() time.Time { return testClock })
	svc := services.NewKnowledgeService(nil, sites, incidents, maintenance, cases, products, agg, nil, 0)

	router := gin.New()
	NewHandlers(nil, svc).Register(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestRootDescriptor(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d", rec.Code)
	}
	var body struct {
		Service   string   `json:"service"`
		Status    string   `json:"status"`
		Version   string   `json:"version"`
		Endpoints []string `json:"endpoints"`
	}
	decodeJSON(t, rec, &body)
	if body.Status != "online" || body.Version != ServiceVersion {
		t.Fatalf("unexpected descriptor %+v", body)
	}
	if len(body.Endpoints) == 0 {
		t.Fatalf("descriptor must list endpoints")
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("GET /healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestSitesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/network/sites?location=valencia", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /network/sites = %d", rec.Code)
	}
	var sites []models.Site
	decodeJSON(t, rec, &sites)
	if len(sites) != 3 {
		t.Fatalf("expected 3 Valencia sites, got %d", len(sites))
	}

	// No filter returns everything; no match returns an empty list, not 404.
	rec = doRequest(t, router, http.MethodGet, "/network/sites", "")
	decodeJSON(t, rec, &sites)
	if len(sites) != 7 {
		t.Fatalf("expected full directory, got %d sites", len(sites))
	}
	rec = doRequest(t, router, http.MethodGet, "/network/sites?location=sevilla", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("no-match lookup must stay 200, got %d", rec.Code)
	}
	decodeJSON(t, rec, &sites)
	if len(sites) != 0 {
		t.Fatalf("expected empty list, got %d sites", len(sites))
	}
}

func TestIncidentsEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/network/incidents?severity=high", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET incidents = %d", rec.Code)
	}
	var incidents []models.Incident
	decodeJSON(t, rec, &incidents)
	if len(incidents) != 1 || incidents[0].IncidentID != "INC-2024-1142" {
		t.Fatalf("unexpected incidents %+v", incidents)
	}

	rec = doRequest(t, router, http.MethodGet, "/network/incidents?severity=catastrophic", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown severity must 400, got %d", rec.Code)
	}
	var errBody map[string]string
	decodeJSON(t, rec, &errBody)
	if errBody["error"] == "" {
		t.Fatalf("400 body must carry an error message, got %q", rec.Body.String())
	}
}

func TestMaintenanceEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// Pinned inside the seeded window.
	at := testClock.Format(time.RFC3339)
	rec := doRequest(t, router, http.MethodGet, "/network/maintenance?at="+at, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET maintenance = %d", rec.Code)
	}
	var windows []models.MaintenanceWindow
	decodeJSON(t, rec, &windows)
	if len(windows) != 1 {
		t.Fatalf("expected 1 active window, got %d", len(windows))
	}

	// Pinned after the window with active_only=false still returns it.
	later := testClock.Add(48 * time.Hour).Format(time.RFC3339)
	rec = doRequest(t, router, http.MethodGet, "/network/maintenance?at="+later+"&active_only=false", "")
	decodeJSON(t, rec, &windows)
	if len(windows) != 1 {
		t.Fatalf("expected all windows with active_only=false, got %d", len(windows))
	}
	rec = doRequest(t, router, http.MethodGet, "/network/maintenance?at="+later, "")
	decodeJSON(t, rec, &windows)
	if len(windows) != 0 {
		t.Fatalf("expected no active windows 48h later, got %d", len(windows))
	}

	if rec := doRequest(t, router, http.MethodGet, "/network/maintenance?active_only=sometimes", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid active_only must 400, got %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/network/maintenance?at=yesterday", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid at must 400, got %d", rec.Code)
	}
}

func TestProductsAndCasesValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/solutions/products?category=AI+Agents", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET products = %d", rec.Code)
	}
	var products []models.Product
	decodeJSON(t, rec, &products)
	for _, p := range products {
		if p.Category != models.CategoryAIAgents {
			t.Fatalf("category filter leaked %+v", p)
		}
	}

	if rec := doRequest(t, router, http.MethodGet, "/solutions/products?category=Hardware", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown category must 400, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/solutions/cases?location_type=urban", "")
	var cases []models.Case
	decodeJSON(t, rec, &cases)
	if len(cases) != 1 || cases[0].LocationType != models.LocationUrban {
		t.Fatalf("unexpected cases %+v", cases)
	}

	if rec := doRequest(t, router, http.MethodGet, "/solutions/cases?location_type=rural", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown location_type must 400, got %d", rec.Code)
	}
}

func TestCaseStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/solutions/cases/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET cases/stats = %d", rec.Code)
	}
	var stats []models.CaseStats
	decodeJSON(t, rec, &stats)
	if len(stats) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(stats))
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"location": "Plaza del Ayuntamiento, Valencia", "issue_type": "coverage", "symptoms": ["no 5G"]}`
	rec := doRequest(t, router, http.MethodPost, "/diagnostics/analyze", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST analyze = %d %s", rec.Code, rec.Body.String())
	}
	var result models.DiagnosticResult
	decodeJSON(t, rec, &result)
	if !result.ContextFound {
		t.Fatalf("expected context_found for a seeded location")
	}
	if len(result.CellSitesNearby) != 1 || result.CellSitesNearby[0].SiteID != "VLC-001" {
		t.Fatalf("unexpected sites %+v", result.CellSitesNearby)
	}
	if result.AdditionalContext == "" {
		t.Fatalf("expected a narrative")
	}
}

func TestAnalyzeLocationRequiredButMayBeEmpty(t *testing.T) {
	router := newTestRouter(t)

	// Absent location key is a validation failure.
	rec := doRequest(t, router, http.MethodPost, "/diagnostics/analyze", `{"issue_type": "coverage"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing location must 400, got %d", rec.Code)
	}

	// Explicit empty location is legal and degenerates to match-all.
	rec = doRequest(t, router, http.MethodPost, "/diagnostics/analyze", `{"location": ""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty location must 200, got %d %s", rec.Code, rec.Body.String())
	}
	var result models.DiagnosticResult
	decodeJSON(t, rec, &result)
	if len(result.CellSitesNearby) != 7 {
		t.Fatalf("empty location should match every site, got %d", len(result.CellSitesNearby))
	}
}

func TestAnalyzeMalformedBody(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/diagnostics/analyze", `{"location": 42}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body must 400, got %d", rec.Code)
	}
}

package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frdeange/apitoolsnetworking/internal/models"
	"github.com/frdeange/apitoolsnetworking/internal/services"
	"github.com/frdeange/apitoolsnetworking/internal/utils"
)

// ServiceVersion is reported by the root descriptor.
const ServiceVersion = "1.0.0"

// Handlers validates requests at the boundary and delegates to the
// knowledge service. Validation failures never reach the aggregator.
type Handlers struct {
	logger *slog.Logger
	svc    *services.KnowledgeService
}

// NewHandlers constructs the handler set.
func NewHandlers(logger *slog.Logger, svc *services.KnowledgeService) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{logger: logger, svc: svc}
}

// Register attaches all routes to the router.
func (h *Handlers) Register(router *gin.Engine) {
	router.GET("/", h.Root)
	router.GET("/healthz", h.Healthz)

	network := router.Group("/network")
	{
		network.GET("/sites", h.Sites)
		network.GET("/incidents", h.Incidents)
		network.GET("/maintenance", h.Maintenance)
	}

	solutions := router.Group("/solutions")
	{
		solutions.GET("/products", h.Products)
		solutions.GET("/cases", h.Cases)
		solutions.GET("/cases/stats", h.CaseStats)
	}

	router.POST("/diagnostics/analyze", h.Analyze)
}

// Root reports the service descriptor.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Kenmei Knowledge Base API",
		"status":  "online",
		"version": ServiceVersion,
		"endpoints": []string{
			"/network/sites",
			"/network/incidents",
			"/network/maintenance",
			"/solutions/products",
			"/solutions/cases",
			"/solutions/cases/stats",
			"/diagnostics/analyze",
		},
	})
}

// Healthz is the liveness probe.
func (h *Handlers) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Sites returns cell sites related to a location. Empty or absent location
// returns the full directory; no result is never an error.
func (h *Handlers) Sites(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Sites(c.Query("location")))
}

// Incidents returns incidents filtered by location and/or severity.
func (h *Handlers) Incidents(c *gin.Context) {
	severity, ok := models.ParseSeverity(c.Query("severity"))
	if !ok {
		badRequest(c, fmt.Sprintf("unknown severity %q", c.Query("severity")))
		return
	}
	c.JSON(http.StatusOK, h.svc.Incidents(c.Query("location"), severity))
}

// Maintenance returns maintenance windows. active_only defaults to true;
// the optional at parameter (RFC3339) pins the evaluation instant.
func (h *Handlers) Maintenance(c *gin.Context) {
	activeOnly := true
	if raw := c.Query("active_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, fmt.Sprintf("invalid active_only %q", raw))
			return
		}
		activeOnly = parsed
	}

	at := time.Now().UTC()
	if raw := c.Query("at"); raw != "" {
		parsed, err := utils.ParseRFC3339(raw)
		if err != nil {
			badRequest(c, fmt.Sprintf("invalid at %q: must be RFC3339", raw))
			return
		}
		at = parsed
	}

	c.JSON(http.StatusOK, h.svc.Maintenance(at, activeOnly))
}

// Products returns catalog entries for a category.
func (h *Handlers) Products(c *gin.Context) {
	category, ok := models.ParseProductCategory(c.Query("category"))
	if !ok {
		badRequest(c, fmt.Sprintf("unknown category %q", c.Query("category")))
		return
	}
	c.JSON(http.StatusOK, h.svc.Products(category))
}

// Cases returns resolved cases for a location type.
func (h *Handlers) Cases(c *gin.Context) {
	locationType, ok := models.ParseLocationType(c.Query("location_type"))
	if !ok {
		badRequest(c, fmt.Sprintf("unknown location_type %q", c.Query("location_type")))
		return
	}
	c.JSON(http.StatusOK, h.svc.Cases(locationType))
}

// CaseStats returns per-location-type summaries of the case history.
func (h *Handlers) CaseStats(c *gin.Context) {
	stats := h.svc.CaseStats()
	if stats == nil {
		stats = []models.CaseStats{}
	}
	c.JSON(http.StatusOK, stats)
}

// diagnosticPayload is the wire shape of a diagnostic request. Location is a
// pointer so a present-but-empty string (legal, means match-all) can be told
// apart from an absent key (validation failure).
type diagnosticPayload struct {
	Location          *string  `json:"location" binding:"required"`
	IssueType         string   `json:"issue_type"`
	Symptoms          []string `json:"symptoms"`
	NetworkTechnology string   `json:"network_technology"`
}

// Analyze runs the composite diagnostic analysis.
func (h *Handlers) Analyze(c *gin.Context) {
	var payload diagnosticPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, fmt.Sprintf("invalid diagnostic request: %v", err))
		return
	}

	req := models.DiagnosticRequest{
		Location:          *payload.Location,
		IssueType:         payload.IssueType,
		Symptoms:          payload.Symptoms,
		NetworkTechnology: payload.NetworkTechnology,
	}

	c.JSON(http.StatusOK, h.svc.Analyze(c.Request.Context(), req))
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}

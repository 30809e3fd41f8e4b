package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/frdeange/apitoolsnetworking/internal/models"
)

// Recommender holds the fixed lookup tables that turn a diagnostic request's
// issue type into a product category and its location into a case bucket.
// The tables ship with embedded defaults and may be overridden by a YAML
// rule pack.
type Recommender struct {
	logger          *slog.Logger
	issueCategories map[models.IssueType]models.ProductCategory
	locationRules   []LocationRule
}

// LocationRule maps a keyword found in a normalized location to a case
// location type. Rules are evaluated in order; the first hit wins.
type LocationRule struct {
	Keyword      string              `yaml:"keyword"`
	LocationType models.LocationType `yaml:"location_type"`
}

// ruleFile is the YAML root structure of an override pack.
type ruleFile struct {
	IssueCategories map[string]string `yaml:"issue_categories"`
	LocationRules   []LocationRule    `yaml:"location_rules"`
}

// NewRecommender builds a Recommender with the default tables, overridden by
// the rule pack at path when one is supplied and exists.
func NewRecommender(path string, logger *slog.Logger) (*Recommender, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recommender{
		logger:          logger,
		issueCategories: defaultIssueCategories(),
		locationRules:   defaultLocationRules(),
	}
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, nil
		}
		return nil, err
	}
	var cfg ruleFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.IssueCategories) > 0 {
		overrides := make(map[models.IssueType]models.ProductCategory, len(cfg.IssueCategories))
		for issue, category := range cfg.IssueCategories {
			parsed, ok := models.ParseProductCategory(category)
			if !ok || parsed == "" {
				return nil, fmt.Errorf("rule pack %s: unknown product category %q", path, category)
			}
			overrides[models.IssueType(strings.ToLower(strings.TrimSpace(issue)))] = parsed
		}
		r.issueCategories = overrides
	}
	if len(cfg.LocationRules) > 0 {
		for _, rule := range cfg.LocationRules {
			if _, ok := models.ParseLocationType(string(rule.LocationType)); !ok || rule.LocationType == "" {
				return nil, fmt.Errorf("rule pack %s: unknown location type %q", path, rule.LocationType)
			}
		}
		r.locationRules = cfg.LocationRules
	}
	logger.Info("recommendation rule pack loaded", slog.String("path", path))
	return r, nil
}

// ProductCategory resolves the recommended-product category for an issue
// type. Unmapped or absent issue types report false: recommendations must be
// precise, never a catalog dump.
func (r *Recommender) ProductCategory(issueType string) (models.ProductCategory, bool) {
	if r == nil {
		return "", false
	}
	key := models.IssueType(strings.ToLower(strings.TrimSpace(issueType)))
	if key == "" {
		return "", false
	}
	category, ok := r.issueCategories[key]
	return category, ok
}

// LocationType derives the advisory case bucket for a request. The normalized
// location is scanned against the keyword rules first; failing that, a
// signal-loss symptom on a 5G technology falls into the urban bucket. When
// nothing applies the caller should query the case history unfiltered.
func (r *Recommender) LocationType(normalizedLocation string, symptoms []string, technology string) (models.LocationType, bool) {
	if r == nil {
		return "", false
	}
	for _, rule := range r.locationRules {
		if rule.Keyword != "" && strings.Contains(normalizedLocation, rule.Keyword) {
			return rule.LocationType, true
		}
	}
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(technology)), "5G") {
		for _, symptom := range symptoms {
			if strings.Contains(strings.ToLower(symptom), "signal") {
				return models.LocationUrban, true
			}
		}
	}
	return "", false
}

func defaultIssueCategories() map[models.IssueType]models.ProductCategory {
	return map[models.IssueType]models.ProductCategory{
		models.IssueCoverage:     models.CategoryAIProducts,
		models.IssueInterference: models.CategoryAIAgents,
		models.IssueHandover:     models.CategoryAIAgents,
		models.IssueCallDrop:     models.CategoryAIAgents,
		models.IssueSpeed:        models.CategoryDataFabric,
		models.IssueLatency:      models.CategoryDataFabric,
	}
}

func defaultLocationRules() []LocationRule {
	return []LocationRule{
		{Keyword: "poligono", LocationType: models.LocationIndustrial},
		{Keyword: "industrial", LocationType: models.LocationIndustrial},
		{Keyword: "autovia", LocationType: models.LocationHighway},
		{Keyword: "carretera", LocationType: models.LocationHighway},
		{Keyword: "highway", LocationType: models.LocationHighway},
		{Keyword: "metro", LocationType: models.LocationUnderground},
		{Keyword: "tunel", LocationType: models.LocationUnderground},
		{Keyword: "underground", LocationType: models.LocationUnderground},
		{Keyword: "centro", LocationType: models.LocationUrban},
		{Keyword: "plaza", LocationType: models.LocationUrban},
		{Keyword: "avenida", LocationType: models.LocationUrban},
		{Keyword: "ciudad", LocationType: models.LocationUrban},
	}
}

// Package casestats aggregates the resolved-case history into per-bucket
// summaries a support agent can quote ("industrial issues take 72h on
// average"). Everything is computed on demand from the in-memory history;
// nothing is persisted.
package casestats

import (
	"log/slog"
	"sort"

	"github.com/frdeange/apitoolsnetworking/internal/models"
)

// Summarizer derives per-location-type statistics from case records.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer constructs a Summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Summarize groups cases by location type and returns one CaseStats per
// bucket, ordered by case count descending then bucket label for a stable
// output.
func (s *Summarizer) Summarize(cases []models.Case) []models.CaseStats {
	if len(cases) == 0 {
		return nil
	}

	buckets := make(map[models.LocationType]*bucketAggregate)
	for _, c := range cases {
		agg := ensureBucket(buckets, c.LocationType)
		agg.count++
		agg.totalResolutionHours += c.ResolutionTimeHours
		agg.totalSuccessRate += c.SuccessRate
		if c.RootCause != "" {
			agg.rootCauseCounts[c.RootCause]++
		}
	}

	stats := make([]models.CaseStats, 0, len(buckets))
	for locationType, agg := range buckets {
		stats = append(stats, models.CaseStats{
			LocationType:       locationType,
			CaseCount:          agg.count,
			AvgResolutionHours: agg.totalResolutionHours / float64(agg.count),
			MeanSuccessRate:    agg.totalSuccessRate / float64(agg.count),
			TopRootCauses:      agg.topRootCauses(3),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].CaseCount != stats[j].CaseCount {
			return stats[i].CaseCount > stats[j].CaseCount
		}
		return stats[i].LocationType < stats[j].LocationType
	})
	return stats
}

type bucketAggregate struct {
	count                int
	totalResolutionHours float64
	totalSuccessRate     float64
	rootCauseCounts      map[string]int
}

func ensureBucket(m map[models.LocationType]*bucketAggregate, locationType models.LocationType) *bucketAggregate {
	agg, ok := m[locationType]
	if !ok {
		agg = &bucketAggregate{rootCauseCounts: make(map[string]int)}
		m[locationType] = agg
	}
	return agg
}

func (agg *bucketAggregate) topRootCauses(limit int) []string {
	causes := make([]string, 0, len(agg.rootCauseCounts))
	for cause := range agg.rootCauseCounts {
		causes = append(causes, cause)
	}
	sort.Slice(causes, func(i, j int) bool {
		if agg.rootCauseCounts[causes[i]] != agg.rootCauseCounts[causes[j]] {
			return agg.rootCauseCounts[causes[i]] > agg.rootCauseCounts[causes[j]]
		}
		return causes[i] < causes[j]
	})
	if len(causes) > limit {
		causes = causes[:limit]
	}
	return causes
}

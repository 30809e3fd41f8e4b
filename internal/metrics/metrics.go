package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeOK labels diagnostics answered from the stores.
	OutcomeOK = "ok"
	// OutcomeCached labels diagnostics served from the response cache.
	OutcomeCached = "cached"
)

var (
	diagnosticsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kenmei_kb",
			Name:      "diagnostics_total",
			Help:      "Total number of diagnostic analyses handled, partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	diagnosticDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kenmei_kb",
			Name:      "diagnostic_seconds",
			Help:      "Diagnostic analysis latency in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kenmei_kb",
			Name:      "lookups_total",
			Help:      "Total number of single-collection lookups, partitioned by collection.",
		},
		[]string{"collection"},
	)
)

// Register attaches the service collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		diagnosticsTotal,
		diagnosticDurationSeconds,
		lookupsTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveDiagnostic records a diagnostic analysis duration and outcome label.
func ObserveDiagnostic(duration time.Duration, outcome string) {
	label := outcome
	if label != OutcomeCached {
		label = OutcomeOK
	}
	diagnosticsTotal.WithLabelValues(label).Inc()
	if duration < 0 {
		duration = 0
	}
	diagnosticDurationSeconds.Observe(duration.Seconds())
}

// ObserveLookup counts one single-collection lookup.
func ObserveLookup(collection string) {
	lookupsTotal.WithLabelValues(collection).Inc()
}

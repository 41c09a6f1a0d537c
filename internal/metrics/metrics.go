// Package metrics exposes Prometheus instrumentation for evaluations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Classification outcomes.
const (
	OutcomeMatch   = "match"
	OutcomeNoMatch = "no_match"
	OutcomeError   = "error"
)

// Render outcomes.
const (
	OutcomeRendered    = "rendered"
	OutcomeUnavailable = "unavailable"
)

// Label values used in place of caller-supplied names that are not
// registered, so that bad requests cannot grow the series set.
const (
	LabelUnknown = "unknown"
	LabelOther   = "other"
)

// Metrics provides observability for the evaluation service. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	// Classification verdicts by interaction, rule and outcome
	Classifications *prometheus.CounterVec

	// Render results by language and outcome
	Renders *prometheus.CounterVec

	// Time spent evaluating a single rule
	ClassifyLatency prometheus.Histogram
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Classifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mathiz_eval_classifications_total",
			Help: "Total answer classifications by interaction, rule and outcome",
		}, []string{"interaction", "rule", "outcome"}),

		Renders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mathiz_eval_renders_total",
			Help: "Total spoken-math renders by language and outcome",
		}, []string{"language", "outcome"}),

		ClassifyLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mathiz_eval_classify_duration_seconds",
			Help:    "Duration of a single rule classification",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementClassification records a classification outcome.
func (m *Metrics) IncrementClassification(interaction, rule, outcome string) {
	if m != nil {
		m.Classifications.WithLabelValues(interaction, rule, outcome).Inc()
	}
}

// IncrementRender records a render outcome.
func (m *Metrics) IncrementRender(language, outcome string) {
	if m != nil {
		m.Renders.WithLabelValues(language, outcome).Inc()
	}
}

// ObserveClassifyLatency records how long one classification took.
func (m *Metrics) ObserveClassifyLatency(d time.Duration) {
	if m != nil {
		m.ClassifyLatency.Observe(d.Seconds())
	}
}

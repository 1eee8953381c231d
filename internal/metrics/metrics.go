// Package metrics exposes Prometheus counters for the calculator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes.
const (
	OutcomeOK                       = "ok"
	OutcomeInsufficientContributors = "insufficient_contributors"
)

// Metrics holds the collectors. A nil *Metrics records nothing.
type Metrics struct {
	calculations *prometheus.CounterVec
	mutations    *prometheus.CounterVec
	people       prometheus.Histogram
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billsplit",
			Name:      "calculations_total",
			Help:      "Settlement calculations by outcome.",
		}, []string{"outcome"}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billsplit",
			Name:      "form_mutations_total",
			Help:      "Form changes by operation.",
		}, []string{"op"}),
		people: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "billsplit",
			Name:      "people_per_calculation",
			Help:      "Finalized contributors per successful calculation.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 20},
		}),
	}
}

// ObserveCalculation counts one calculation. people is only recorded for
// successful ones.
func (m *Metrics) ObserveCalculation(outcome string, people int) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.people.Observe(float64(people))
	}
}

// ObserveMutation counts one form change.
func (m *Metrics) ObserveMutation(op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op).Inc()
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCalculation(OutcomeOK, 3)
	m.ObserveCalculation(OutcomeOK, 2)
	m.ObserveCalculation(OutcomeInsufficientContributors, 0)
	m.ObserveMutation("toggle")

	if got := testutil.ToFloat64(m.calculations.WithLabelValues(OutcomeOK)); got != 2 {
		t.Errorf("ok calculations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.calculations.WithLabelValues(OutcomeInsufficientContributors)); got != 1 {
		t.Errorf("insufficient calculations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.mutations.WithLabelValues("toggle")); got != 1 {
		t.Errorf("toggle mutations = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.people); got != 1 {
		t.Errorf("people histogram series = %d, want 1", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveCalculation(OutcomeOK, 1)
	m.ObserveMutation("add")
}

package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/prometheus/client_golang/prometheus"
)

// GridMetrics exposes return request grid activity to Prometheus
type GridMetrics struct {
	queries       *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	degradedRows  *prometheus.CounterVec
}

// NewGridMetrics registers the grid metrics on the default registerer
func NewGridMetrics() *GridMetrics {
	return NewGridMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewGridMetricsWithRegisterer registers the grid metrics on registerer.
// Registering twice returns the collectors of the first registration.
func NewGridMetricsWithRegisterer(registerer prometheus.Registerer) *GridMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &GridMetrics{
		queries: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "returns_grid_queries_total",
			Help: "Total number of grid queries by operation and outcome",
		}, []string{"operation", "outcome"})),
		queryDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "returns_grid_query_duration_seconds",
			Help:    "Duration of grid queries including row projection",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"})),
		degradedRows: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "returns_grid_degraded_rows_total",
			Help: "Rows projected with a missing reference or unavailable collaborator",
		}, []string{"reason"})),
	}
}

// ObserveQuery records one grid query
func (m *GridMetrics) ObserveQuery(operation string, duration time.Duration, err error) {
	m.queries.WithLabelValues(operation, outcome(err)).Inc()
	m.queryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncDegradedRow counts a row that was projected with empty values
func (m *GridMetrics) IncDegradedRow(reason string) {
	m.degradedRows.WithLabelValues(reason).Inc()
}

// Queries returns the query counter
func (m *GridMetrics) Queries() *prometheus.CounterVec {
	return m.queries
}

// DegradedRows returns the degraded row counter
func (m *GridMetrics) DegradedRows() *prometheus.CounterVec {
	return m.degradedRows
}

func outcome(err error) string {
	var domainErr *shared.DomainError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &domainErr):
		return domainErr.Code
	default:
		return "error"
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type %T", alreadyRegistered.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

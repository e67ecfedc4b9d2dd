// Package metrics exposes the Prometheus instruments of the fee ledger.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// Dispatch outcomes recorded by NotificationDispatched.
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeNoAdmin   = "no_admin"
	OutcomePublished = "published"
	OutcomeDropped   = "publish_failed"
)

// Metrics holds every ledger instrument.
type Metrics struct {
	LedgerMutations      *prometheus.CounterVec
	NotificationDispatch *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
}

// New registers the ledger metrics on reg. Passing a fresh registry per test
// avoids duplicate registration panics.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LedgerMutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bluemoon_ledger_mutations_total",
			Help: "Committed ledger mutations by entity and action",
		}, []string{"entity", "action"}),
		NotificationDispatch: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bluemoon_notification_dispatch_total",
			Help: "Notification dispatch attempts by outcome",
		}, []string{"outcome"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bluemoon_http_request_duration_seconds",
			Help:    "HTTP request duration by method, route pattern and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

// LedgerMutation records one committed mutation.
func (m *Metrics) LedgerMutation(entity domain.EntityType, action domain.AuditAction) {
	m.LedgerMutations.WithLabelValues(entity.String(), action.String()).Inc()
}

// NotificationDispatched records a dispatch outcome.
func (m *Metrics) NotificationDispatched(outcome string) {
	m.NotificationDispatch.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records the duration of a served request.
// Call with time.Now() taken at the start of the request.
func (m *Metrics) ObserveHTTP(method, route string, status int, start time.Time) {
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

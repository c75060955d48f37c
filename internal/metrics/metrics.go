// Package metrics provides Prometheus metrics for the price estimator relay.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "price_estimator"

// Request outcomes recorded by the price estimator handler.
const (
	OutcomeSuccess            = "success"
	OutcomeConfigurationError = "configuration_error"
	OutcomeValidationError    = "validation_error"
	OutcomeUpstreamError      = "upstream_error"
	OutcomeUnexpectedError    = "unexpected_error"
)

// Recorder is what the service and handlers need from metrics.
type Recorder interface {
	ObserveRequest(outcome string)
	ObserveUpstream(statusCode int, duration time.Duration)
}

// Manager holds the registered collectors.
type Manager struct {
	requests         *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// NewManager registers all collectors on reg.
func NewManager(reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)
	return &Manager{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Price estimation requests by outcome.",
		}, []string{"outcome"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Latency of calls to the upstream pricing service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
}

// ObserveRequest counts one handled price request.
func (m *Manager) ObserveRequest(outcome string) {
	m.requests.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records one upstream call. A zero status means a transport failure.
func (m *Manager) ObserveUpstream(statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	m.upstreamDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// Noop discards all observations.
type Noop struct{}

func (Noop) ObserveRequest(string) {}
func (Noop) ObserveUpstream(int, time.Duration) {}

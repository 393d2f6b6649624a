package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on /metrics
type Metrics struct {
	Requests    *prometheus.CounterVec
	LatencyMS   *prometheus.HistogramVec
	SideEffects *prometheus.CounterVec
	Outbox      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. A nil reg gets a private registry,
// which keeps tests independent of the global one.
func New(service string, reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fastfood",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "method", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fastfood",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route", "method"})

	sideEffects := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fastfood",
		Subsystem: service,
		Name:      "order_side_effects_total",
		Help:      "Best-effort order side effects by outcome.",
	}, []string{"effect", "outcome"})

	outbox := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fastfood",
		Subsystem: service,
		Name:      "outbox_messages_total",
		Help:      "Outbox relay results by outcome.",
	}, []string{"outcome"})

	reg.MustRegister(requests, latency, sideEffects, outbox)

	return &Metrics{
		Requests:    requests,
		LatencyMS:   latency,
		SideEffects: sideEffects,
		Outbox:      outbox,
		gatherer:    reg,
	}
}

// SideEffect counts one best-effort side effect
func (m *Metrics) SideEffect(effect string, err error) {
	if m == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}

	m.SideEffects.WithLabelValues(effect, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// OutboxResult counts one outbox relay outcome
func (m *Metrics) OutboxResult(outcome string) {
	if m == nil {
		return
	}

	m.Outbox.WithLabelValues(outcome).Inc()
}

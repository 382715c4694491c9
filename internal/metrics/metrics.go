// Package metrics exposes Prometheus counters for the auth flows.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	RequestsTotal *prometheus.CounterVec
}

// NewMetrics creates the auth metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_requests_total",
				Help: "Total number of auth requests by flow and response status",
			},
			[]string{"flow", "status"},
		),
	}

	reg.MustRegister(m.RequestsTotal)

	return m
}

// NewRegistry returns a registry carrying the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

// Observe counts one finished request. A nil receiver is a no-op.
func (m *Metrics) Observe(flow string, status int) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(flow, strconv.Itoa(status)).Inc()
}

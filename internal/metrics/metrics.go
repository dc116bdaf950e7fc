// Package metrics exposes Prometheus counters for the HTTP API and the projection engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zucit/internal/model"
)

const namespace = "zucit"

// Metrics owns its registry so several instances (tests) never collide.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SimulationsTotal    *prometheus.CounterVec
	SimulationDuration  prometheus.Histogram
	SimulatedYears      prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		SimulationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Completed simulations by bankruptcy-risk level",
		}, []string{"risk"}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_duration_seconds",
			Help:      "Engine run time in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		SimulatedYears: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulated_years",
			Help:      "Projection horizon per simulation",
			Buckets:   []float64{0, 5, 10, 20, 50, 100, 500},
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SimulationsTotal,
		m.SimulationDuration,
		m.SimulatedYears,
	)
	return m
}

// ObserveSimulation records one engine run.
func (m *Metrics) ObserveSimulation(res *model.SimulationResult, took time.Duration) {
	if m == nil || res == nil {
		return
	}
	m.SimulationsTotal.WithLabelValues(string(res.KPIs.Level)).Inc()
	m.SimulationDuration.Observe(took.Seconds())
	m.SimulatedYears.Observe(float64(len(res.Years) - 1))
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(route, method, code string, took time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, method, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(took.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package metrics registra métricas Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors en un registry propio (no el global).
type Metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	requests    *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pethumanage",
			Name:      "conversions_total",
			Help:      "Age conversions by species and outcome.",
		}, []string{"species", "outcome"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pethumanage",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.conversions,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Labels fijos para valores que vienen del cliente y no están acotados.
const (
	UnknownSpecies = "unknown"
	UnmatchedRoute = "unmatched"
)

// ObserveConversion implementa agingcurves.Recorder.
// En un miss la especie la eligió el cliente: no se usa como label.
func (m *Metrics) ObserveConversion(species string, found bool) {
	outcome := "found"
	if !found {
		outcome = "not_found"
		species = UnknownSpecies
	}
	m.conversions.WithLabelValues(species, outcome).Inc()
}

// ObserveRequest espera el patrón de chi; vacío => UnmatchedRoute.
func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if route == "" {
		route = UnmatchedRoute
	}
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
	default:
		method = "OTHER"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

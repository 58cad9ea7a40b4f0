package web

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics of the server.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Projections     *prometheus.CounterVec
	ProjectionYears prometheus.Histogram
	RateLimited     prometheus.Counter
}

// NewMetrics creates the metrics in their own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cip_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cip_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"route"},
		),
		Projections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cip_projections_total",
				Help: "Total number of projections by result (ok or error kind)",
			},
			[]string{"result"},
		),
		ProjectionYears: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cip_projection_years",
				Help:    "Number of years of the computed projections",
				Buckets: []float64{1, 5, 10, 20, 30, 40, 50},
			},
		),
		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cip_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
	}
	m.registry.MustRegister(m.Requests, m.RequestDuration, m.Projections, m.ProjectionYears, m.RateLimited)
	return m
}

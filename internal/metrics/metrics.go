// Package metrics exposes Prometheus counters for the catalog cache,
// TMDB fetch failures and HTTP latency.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for one process.
type Metrics struct {
	registry *prometheus.Registry

	CacheHits      *prometheus.CounterVec
	CacheMisses    *prometheus.CounterVec
	CacheEvictions *prometheus.CounterVec
	FetchFailures  *prometheus.CounterVec
	HTTPLatency    *prometheus.HistogramVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cinebrowse_cache_hits_total",
				Help: "Total number of memoized query hits.",
			},
			[]string{"cache"},
		),
		CacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cinebrowse_cache_misses_total",
				Help: "Total number of memoized query misses (remote fetches).",
			},
			[]string{"cache"},
		),
		CacheEvictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cinebrowse_cache_evictions_total",
				Help: "Total number of least-recently-used evictions.",
			},
			[]string{"cache"},
		),
		FetchFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cinebrowse_tmdb_fetch_failures_total",
				Help: "Total number of failed TMDB queries.",
			},
			[]string{"operation"},
		),
		HTTPLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cinebrowse_http_latency_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "status_code"},
		),
	}

	m.registry.MustRegister(
		m.CacheHits,
		m.CacheMisses,
		m.CacheEvictions,
		m.FetchFailures,
		m.HTTPLatency,
		collectors.NewGoCollector(),
	)
	return m
}

// Hit implements memo.Observer.
func (m *Metrics) Hit(cache string) { m.CacheHits.WithLabelValues(cache).Inc() }

// Miss implements memo.Observer.
func (m *Metrics) Miss(cache string) { m.CacheMisses.WithLabelValues(cache).Inc() }

// Evict implements memo.Observer.
func (m *Metrics) Evict(cache string) { m.CacheEvictions.WithLabelValues(cache).Inc() }

// FetchFailed counts a failed TMDB query for the given operation.
func (m *Metrics) FetchFailed(op string) { m.FetchFailures.WithLabelValues(op).Inc() }

// Handler exposes the registry for Prometheus to scrape.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware measures latency for each HTTP request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.HTTPLatency.
			WithLabelValues(r.Method, strconv.Itoa(rec.statusCode)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

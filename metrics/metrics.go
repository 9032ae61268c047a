// Package metrics exports prometheus counters for the permission cache and catalog calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache kinds used as label values
const (
	CacheEntity   = "entity"
	CacheResource = "resource"
)

// Metrics holds the console's collectors on a private registry.
// All methods are safe on a nil receiver so components can run without metrics.
type Metrics struct {
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	fetchErrors     *prometheus.CounterVec
	catalogRequests *prometheus.CounterVec
	catalogDuration *prometheus.HistogramVec
	activeProviders prometheus.Gauge
	notifications   *prometheus.CounterVec

	registry *prometheus.Registry
}

func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "permission_cache",
			Name:      "hits_total",
			Help:      "Permission lookups answered from the provider cache",
		}, []string{"cache"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "permission_cache",
			Name:      "misses_total",
			Help:      "Permission lookups that required a fetch",
		}, []string{"cache"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "permission_cache",
			Name:      "fetch_errors_total",
			Help:      "Permission fetches that failed",
		}, []string{"cache"}),
		catalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "requests_total",
			Help:      "Requests sent to the catalog API by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		catalogDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "request_duration_seconds",
			Help:      "Catalog API latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		activeProviders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_permission_providers",
			Help:      "Console sessions holding a permission provider",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "User-facing notifications raised by level",
		}, []string{"level"}),
		registry: registry,
	}

	registry.MustRegister(
		m.cacheHits,
		m.cacheMisses,
		m.fetchErrors,
		m.catalogRequests,
		m.catalogDuration,
		m.activeProviders,
		m.notifications,
	)
	return m
}

func (m *Metrics) CacheHit(cache string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(cache).Inc()
}

func (m *Metrics) CacheMiss(cache string) {
	if m == nil {
		return
	}
	m.cacheMisses.WithLabelValues(cache).Inc()
}

func (m *Metrics) FetchError(cache string) {
	if m == nil {
		return
	}
	m.fetchErrors.WithLabelValues(cache).Inc()
}

// CatalogRequest records one catalog call
func (m *Metrics) CatalogRequest(endpoint string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.catalogRequests.WithLabelValues(endpoint, outcome).Inc()
	m.catalogDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (m *Metrics) ProviderOpened() {
	if m == nil {
		return
	}
	m.activeProviders.Inc()
}

func (m *Metrics) ProviderClosed() {
	if m == nil {
		return
	}
	m.activeProviders.Dec()
}

func (m *Metrics) Notification(level string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(level).Inc()
}

// Registry exposes the registry for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package infrastructure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherwidget.app/internal/ports"
)

const metricsNamespace = "weatherwidget"

// PrometheusMetricsCollector implements the MetricsCollector port on a
// dedicated registry so tests can create as many as they like
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	geocodingRequests *prometheus.CounterVec
	weatherRequests   *prometheus.CounterVec
	loadCycles        *prometheus.CounterVec
	reloadsDropped    prometheus.Counter
	cacheOperations   *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the widget metrics together with
// the Go runtime and process collectors
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()

	m := &PrometheusMetricsCollector{
		registry: registry,
		geocodingRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "geocoding_requests_total",
				Help:      "Geocoding provider calls by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		weatherRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "weather_provider_requests_total",
				Help:      "Weather provider calls by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		loadCycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "widget_load_cycles_total",
				Help:      "Completed widget load cycles by outcome",
			},
			[]string{"outcome"},
		),
		reloadsDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "widget_reloads_dropped_total",
				Help:      "Reload requests dropped because a load was already in flight",
			},
		),
		cacheOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_operations_total",
				Help:      "Cache lookups by cache and result",
			},
			[]string{"cache", "result"},
		),
	}

	registry.MustRegister(
		m.geocodingRequests,
		m.weatherRequests,
		m.loadCycles,
		m.reloadsDropped,
		m.cacheOperations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *PrometheusMetricsCollector) RecordGeocodingRequest(provider, outcome string) {
	m.geocodingRequests.WithLabelValues(provider, outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordWeatherRequest(provider, outcome string) {
	m.weatherRequests.WithLabelValues(provider, outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordLoadCycle(outcome string) {
	m.loadCycles.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordReloadDropped() {
	m.reloadsDropped.Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheResult(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheOperations.WithLabelValues(cache, result).Inc()
}

// RegisterCacheStats exposes a backend's own hit ratio as a gauge
func (m *PrometheusMetricsCollector) RegisterCacheStats(backend string, stats ports.CacheStatsProvider) error {
	return m.registry.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "cache_hit_ratio",
			Help:        "Hit ratio reported by the cache backend",
			ConstLabels: prometheus.Labels{"backend": backend},
		},
		func() float64 { return stats.GetStats().HitRatio },
	))
}

// Registry returns the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

var _ ports.MetricsCollector = (*PrometheusMetricsCollector)(nil)

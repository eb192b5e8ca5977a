// Package metrics provides Prometheus metrics for the Olympus analytics service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Dataset metrics
	datasetLoaded          prometheus.Gauge
	datasetRows            prometheus.Gauge
	datasetRowsDropped     prometheus.Gauge
	datasetUnknownRegions  prometheus.Gauge
	datasetNormalized      *prometheus.GaugeVec
	datasetLoadDurationMs  prometheus.Gauge
	datasetLoadFailures    *prometheus.CounterVec
	datasetFilterOptionLen *prometheus.GaugeVec

	// Aggregation metrics
	aggregationLatency     *prometheus.HistogramVec
	aggregationMedalEvents prometheus.Counter
	aggregationCollapsed   prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "olympus",
		subsystem:        "insight",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric definition
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.datasetLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_loaded",
		Help:        "1 when the athlete dataset loaded, 0 when the service runs on an empty dataset",
		ConstLabels: labels,
	})

	m.datasetRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_rows",
		Help:        "Number of athlete-event rows in the canonical table",
		ConstLabels: labels,
	})

	m.datasetRowsDropped = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_rows_dropped",
		Help:        "Rows dropped at load because the year did not parse",
		ConstLabels: labels,
	})

	m.datasetUnknownRegions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_unknown_region_rows",
		Help:        "Rows whose NOC did not resolve to a region",
		ConstLabels: labels,
	})

	m.datasetNormalized = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_normalized_values",
		Help:        "Unexpected enum values normalized at load, by field",
		ConstLabels: labels,
	}, []string{"field"})

	m.datasetLoadDurationMs = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_load_duration_milliseconds",
		Help:        "Wall time of the one-time dataset load",
		ConstLabels: labels,
	})

	m.datasetLoadFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_load_failures_total",
		Help:        "Dataset load failures by input",
		ConstLabels: labels,
	}, []string{"input"})

	m.datasetFilterOptionLen = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_filter_options",
		Help:        "Number of distinct values per filter dimension",
		ConstLabels: labels,
	}, []string{"dimension"})

	m.aggregationLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "aggregation_latency_milliseconds",
		Help:        "Latency of page computations over the canonical table",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"operation"})

	m.aggregationMedalEvents = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "aggregation_medal_events_total",
		Help:        "Unique medal events counted by the aggregator",
		ConstLabels: labels,
	})

	m.aggregationCollapsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "aggregation_team_rows_collapsed_total",
		Help:        "Medal rows collapsed into an already counted team medal",
		ConstLabels: labels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_component_total",
		Help:        "Errors by component and error type",
		ConstLabels: labels,
	}, []string{"component", "error_type"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_type_total",
		Help:        "Errors by type and severity",
		ConstLabels: labels,
	}, []string{"error_type", "severity"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_endpoint_total",
		Help:        "Errors by HTTP endpoint",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_memory_bytes",
		Help:        "Heap bytes allocated",
		ConstLabels: labels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_goroutines",
		Help:        "Number of goroutines",
		ConstLabels: labels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_gc_pause_milliseconds",
		Help:        "Average GC pause in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})
}

// Enabled reports whether recording is active.
func (m *Manager) Enabled() bool { return m.enabled }

// RefreshInterval is how often gauge updaters should run.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

// Dataset metrics.

// DatasetSnapshot is the summary of a finished load.
type DatasetSnapshot struct {
	Loaded        bool
	Rows          int
	RowsDropped   int
	UnknownRegion int
	Normalized    map[string]int
	Duration      time.Duration
	FilterOptions map[string]int
}

// RecordDatasetLoad publishes a finished load.
func RecordDatasetLoad(s DatasetSnapshot) {
	m := globalManager
	if !m.enabled {
		return
	}
	if s.Loaded {
		m.datasetLoaded.Set(1)
	} else {
		m.datasetLoaded.Set(0)
	}
	m.datasetRows.Set(float64(s.Rows))
	m.datasetRowsDropped.Set(float64(s.RowsDropped))
	m.datasetUnknownRegions.Set(float64(s.UnknownRegion))
	m.datasetLoadDurationMs.Set(float64(s.Duration.Milliseconds()))
	for field, n := range s.Normalized {
		m.datasetNormalized.WithLabelValues(field).Set(float64(n))
	}
	for dim, n := range s.FilterOptions {
		m.datasetFilterOptionLen.WithLabelValues(dim).Set(float64(n))
	}
}

// RecordDatasetLoadFailure counts a failed input read.
func RecordDatasetLoadFailure(input string) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetLoadFailures.WithLabelValues(input).Inc()
}

// Aggregation metrics.

// RecordAggregationLatency observes one page computation.
func RecordAggregationLatency(operation string, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.aggregationLatency.WithLabelValues(operation).Observe(latencyMs)
}

// RecordMedalEvents counts unique medal events and collapsed team rows.
func RecordMedalEvents(unique, collapsed int) {
	if !globalManager.enabled {
		return
	}
	globalManager.aggregationMedalEvents.Add(float64(unique))
	globalManager.aggregationCollapsed.Add(float64(collapsed))
}

// HTTP metrics.

// RecordHTTPRequest counts a request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes request latency in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error metrics.

func RecordErrorByComponent(component, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

func RecordErrorByType(errorType, severity string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// System metrics.

func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom registry used for all service metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RefreshInterval is how often the process should sample the system gauges.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}

// SetEnabled toggles recording on the global manager.
func SetEnabled(enabled bool) {
	globalManager.enabled = enabled
}

// Package metrics provides Prometheus metrics for the larmor fetcher.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the fetcher.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Acquisition metrics - entry fetching and caching
	entriesFetched   prometheus.Counter
	entriesFailed    prometheus.Counter
	entryCacheHits   prometheus.Counter
	entryCacheMisses prometheus.Counter
	fetchLatency     prometheus.Histogram

	// Normalization metrics - record extraction quality
	entriesNormalized     prometheus.Counter
	normalizationFailures prometheus.Counter
	measurements          *prometheus.CounterVec

	// Structure metrics - cross-referenced structure downloads
	structureDownloads prometheus.Counter
	structureCacheHits prometheus.Counter
	structureFailures  prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "larmor",
		subsystem:        "fetcher",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.entriesFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entries_fetched_total",
		Help:      "Total number of archive entries fetched from the remote API",
	})

	m.entriesFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entries_failed_total",
		Help:      "Total number of archive entry fetches that failed",
	})

	m.entryCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entry_cache_hits_total",
		Help:      "Total number of entries served from the on-disk cache",
	})

	m.entryCacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entry_cache_misses_total",
		Help:      "Total number of entry cache misses triggering a remote fetch",
	})

	m.fetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_latency_milliseconds",
		Help:      "Histogram of remote fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.entriesNormalized = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entries_normalized_total",
		Help:      "Total number of entries successfully normalized",
	})

	m.normalizationFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "normalization_failures_total",
		Help:      "Total number of entries whose normalization was aborted",
	})

	m.measurements = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "measurements_extracted_total",
			Help:      "Total number of relaxation measurements extracted by observable kind",
		},
		[]string{"kind"},
	)

	m.structureDownloads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "structure_downloads_total",
		Help:      "Total number of structure files downloaded",
	})

	m.structureCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "structure_cache_hits_total",
		Help:      "Total number of structure files served from the on-disk cache",
	})

	m.structureFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "structure_failures_total",
		Help:      "Total number of structure downloads that failed",
	})
}

// RecordEntryFetched increments the fetched entries counter.
func RecordEntryFetched() {
	globalManager.entriesFetched.Inc()
}

// RecordEntryFetchFailure increments the failed entry fetches counter.
func RecordEntryFetchFailure() {
	globalManager.entriesFailed.Inc()
}

// RecordEntryCacheHit increments the entry cache hit counter.
func RecordEntryCacheHit() {
	globalManager.entryCacheHits.Inc()
}

// RecordEntryCacheMiss increments the entry cache miss counter.
func RecordEntryCacheMiss() {
	globalManager.entryCacheMisses.Inc()
}

// RecordFetchLatency records the latency of a remote fetch in milliseconds.
func RecordFetchLatency(latencyMs float64) {
	globalManager.fetchLatency.Observe(latencyMs)
}

// RecordEntryNormalized increments the normalized entries counter.
func RecordEntryNormalized() {
	globalManager.entriesNormalized.Inc()
}

// RecordNormalizationFailure increments the aborted normalizations counter.
func RecordNormalizationFailure() {
	globalManager.normalizationFailures.Inc()
}

// RecordMeasurements adds extracted measurement counts for an observable kind.
func RecordMeasurements(kind string, count int) {
	globalManager.measurements.WithLabelValues(kind).Add(float64(count))
}

// RecordStructureDownload increments the structure downloads counter.
func RecordStructureDownload() {
	globalManager.structureDownloads.Inc()
}

// RecordStructureCacheHit increments the structure cache hit counter.
func RecordStructureCacheHit() {
	globalManager.structureCacheHits.Inc()
}

// RecordStructureFailure increments the failed structure downloads counter.
func RecordStructureFailure() {
	globalManager.structureFailures.Inc()
}

// GetRegistry returns the custom Prometheus registry for exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

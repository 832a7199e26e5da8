package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestSize       *prometheus.HistogramVec
	HTTPResponseSize      *prometheus.HistogramVec
	HTTPActiveConnections *prometheus.GaugeVec

	// Cache metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitExceededTotal *prometheus.CounterVec

	// Store metrics
	StoreOperationDuration *prometheus.HistogramVec
	StoreOperationsTotal   *prometheus.CounterVec
	MutationConflictsTotal *prometheus.CounterVec

	// Wall metrics
	PostsCreatedTotal   prometheus.Counter
	ReactionsTotal      *prometheus.CounterVec
	CommentsTotal       prometheus.Counter
	ProfileUpdatesTotal *prometheus.CounterVec

	// Error metrics
	ErrorsTotal *prometheus.CounterVec
}

var (
	instance *Metrics
	once     sync.Once
)

// Initialize creates and registers all Prometheus metrics
func Initialize() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			// HTTP metrics
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestSize: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_request_size_bytes",
					Help:    "HTTP request body size in bytes",
					Buckets: prometheus.ExponentialBuckets(100, 10, 7),
				},
				[]string{"method", "path"},
			),
			HTTPResponseSize: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_response_size_bytes",
					Help:    "HTTP response size in bytes",
					Buckets: prometheus.ExponentialBuckets(100, 10, 7),
				},
				[]string{"method", "path", "status"},
			),
			HTTPActiveConnections: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "http_active_connections",
					Help: "Number of currently active HTTP connections",
				},
				[]string{"method", "path"},
			),

			// Cache metrics
			CacheHitsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "cache_hits_total",
					Help: "Total number of cache hits",
				},
				[]string{"cache_name"},
			),
			CacheMissesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "cache_misses_total",
					Help: "Total number of cache misses",
				},
				[]string{"cache_name"},
			),

			// Rate limiting metrics
			RateLimitExceededTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "rate_limit_exceeded_total",
					Help: "Total number of rate limit violations",
				},
				[]string{"limiter"},
			),

			// Store metrics
			StoreOperationDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "store_operation_duration_seconds",
					Help:    "Document store operation latency in seconds",
					Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
				},
				[]string{"operation"},
			),
			StoreOperationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "store_operations_total",
					Help: "Total number of document store operations",
				},
				[]string{"operation", "status"},
			),
			MutationConflictsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "post_mutation_conflicts_total",
					Help: "Post mutations that gave up after repeated concurrent writes",
				},
				[]string{"operation"},
			),

			// Wall metrics
			PostsCreatedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "wall_posts_created_total",
					Help: "Total number of posts created",
				},
			),
			ReactionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "wall_reactions_total",
					Help: "Reaction toggles by type and outcome",
				},
				[]string{"type", "outcome"},
			),
			CommentsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "wall_comments_total",
					Help: "Total number of comments added",
				},
			),
			ProfileUpdatesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "wall_profile_updates_total",
					Help: "Profile updates by kind",
				},
				[]string{"kind"},
			),

			// Error metrics
			ErrorsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "errors_total",
					Help: "Total number of errors by type",
				},
				[]string{"error_type", "endpoint"},
			),
		}
	})
	return instance
}

// Get returns the global metrics instance
func Get() *Metrics {
	return Initialize()
}

// ObserveStoreOperation records the latency and outcome of a store call
func ObserveStoreOperation(operation string, start time.Time, err error) {
	m := Get()
	status := "success"
	if err != nil {
		status = "error"
	}
	m.StoreOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	m.StoreOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordCacheHit records a cache hit
func RecordCacheHit(cacheName string) {
	Get().CacheHitsTotal.WithLabelValues(cacheName).Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss(cacheName string) {
	Get().CacheMissesTotal.WithLabelValues(cacheName).Inc()
}

// RecordRateLimitExceeded records a rejected request
func RecordRateLimitExceeded(limiter string) {
	Get().RateLimitExceededTotal.WithLabelValues(limiter).Inc()
}

// RecordError records an error by type
func RecordError(errorType, endpoint string) {
	Get().ErrorsTotal.WithLabelValues(errorType, endpoint).Inc()
}

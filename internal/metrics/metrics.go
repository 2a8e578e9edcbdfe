// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, editorial workflow, payments,
// exports and database operations.
package metrics

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "pusaka_newsletter"
)

// Transition results.
const (
	ResultApplied  = "applied"
	ResultNoop     = "noop"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
	ResultError    = "error"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	HTTPAccessDeniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "access_denied_total",
			Help:      "Total number of requests answered with 401 or 403 by route, status, and caller role",
		},
		[]string{"path", "status", "role"},
	)

	// Workflow metrics - track status changes of articles, blogs and editions
	WorkflowTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workflow",
			Name:      "transitions_total",
			Help:      "Total number of requested status transitions by entity, source status, target status, and result",
		},
		[]string{"entity", "from", "to", "result"},
	)

	ReviewDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workflow",
			Name:      "review_decisions_total",
			Help:      "Total number of recorded review decisions",
		},
		[]string{"decision"},
	)

	// Payment metrics - track calls to the payment gateway
	PaymentGatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "gateway_requests_total",
			Help:      "Total number of payment gateway requests by operation and result",
		},
		[]string{"operation", "result"},
	)

	PaymentGatewayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "gateway_request_duration_seconds",
			Help:      "Payment gateway request duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	SubscriptionActivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "subscription_activations_total",
			Help:      "Total number of activated subscriptions by plan",
		},
		[]string{"plan"},
	)

	// Streaming export metrics - track admin exports
	StreamingExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_total",
			Help:      "Total number of streaming exports by resource type, format, and result",
		},
		[]string{"resource_type", "format", "result"},
	)

	StreamingExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "export_duration_seconds",
			Help:      "Streaming export duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"resource_type", "format"},
	)

	StreamingExportRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "records_total",
			Help:      "Total number of records streamed by resource type and format",
		},
		[]string{"resource_type", "format"},
	)

	StreamingExportsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_in_flight",
			Help:      "Number of streaming exports currently in progress",
		},
		[]string{"resource_type"},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// ObserveTransition records the outcome of a requested status change
func ObserveTransition(entity, from, to, result string) {
	WorkflowTransitionsTotal.WithLabelValues(entity, from, to, result).Inc()
}

// ObserveReviewDecision records a review decision that was stored
func ObserveReviewDecision(decision string) {
	ReviewDecisionsTotal.WithLabelValues(decision).Inc()
}

// ObservePaymentCall records a payment gateway call and its latency
func ObservePaymentCall(operation, result string, durationSeconds float64) {
	PaymentGatewayRequestsTotal.WithLabelValues(operation, result).Inc()
	PaymentGatewayDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// ObserveSubscriptionActivation records an activated subscription
func ObserveSubscriptionActivation(planID string) {
	SubscriptionActivationsTotal.WithLabelValues(planID).Inc()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time in seconds
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Seconds())
}

// StartStreamingExport starts tracking a streaming export
func StartStreamingExport(resourceType string) {
	StreamingExportsInFlight.WithLabelValues(resourceType).Inc()
}

// EndStreamingExport ends tracking a streaming export and records metrics
func EndStreamingExport(resourceType, format, result string, durationSeconds float64, recordCount int) {
	StreamingExportsInFlight.WithLabelValues(resourceType).Dec()
	StreamingExportsTotal.WithLabelValues(resourceType, format, result).Inc()
	StreamingExportDuration.WithLabelValues(resourceType, format).Observe(durationSeconds)
	if recordCount > 0 {
		StreamingExportRecords.WithLabelValues(resourceType, format).Add(float64(recordCount))
	}
}

// Package observability provides Prometheus metrics and OpenTelemetry
// tracing setup for the application.
package observability

import (
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitpoint_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheRequests counts cache-aside lookups by key prefix and outcome (hit/miss).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitpoint_cache_requests_total",
		Help: "Total cache-aside lookups by key prefix and outcome",
	}, []string{"prefix", "outcome"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fitpoint_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// LikeToggles counts like toggle outcomes (liked/unliked).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitpoint_like_toggles_total",
		Help: "Total like toggle operations by resulting state",
	}, []string{"result"})

	// ToggleRetries counts atomic-toggle retries after a lost race.
	ToggleRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitpoint_toggle_retries_total",
		Help: "Total toggle operations retried after losing a concurrent race",
	}, []string{"entity"})

	// NutritionCalculations counts nutrition plan computations by goal.
	NutritionCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitpoint_nutrition_calculations_total",
		Help: "Total nutrition target calculations by goal",
	}, []string{"goal"})
)

// InitFiberMetrics creates the Prometheus HTTP middleware for the Fiber app.
func InitFiberMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

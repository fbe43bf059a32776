package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// Business metrics
	routesGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "routes_generated_total",
			Help: "Total number of collection routes generated",
		},
	)

	stopsCollectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stops_collected_total",
			Help: "Total number of route stops collected",
		},
	)

	billsPaidTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bills_paid_total",
			Help: "Total number of payment bills settled",
		},
		[]string{"status"}, // success, failed
	)
)

// PrometheusMiddleware records request counters and latency histograms
func PrometheusMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.FullPath()
		if path == "/metrics" || path == "/health" || path == "/ready" {
			ctx.Next()
			return
		}

		// Unmatched routes have no template, fall back to the raw path
		if path == "" {
			path = ctx.Request.URL.Path
		}

		httpRequestsInFlight.Inc()
		start := time.Now()

		ctx.Next()

		httpRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ctx.Writer.Status())

		httpRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(duration)
	}
}

// MetricsHandler returns the Prometheus scrape handler
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}

// UpdateDBMetrics refreshes the connection pool gauges. Called periodically
// from main.
func UpdateDBMetrics(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}

// RecordRoutesGenerated counts generated routes
func RecordRoutesGenerated(n int) {
	routesGeneratedTotal.Add(float64(n))
}

// RecordStopCollected counts a collected stop
func RecordStopCollected() {
	stopsCollectedTotal.Inc()
}

// RecordBillPaid counts a settlement attempt
func RecordBillPaid(success bool) {
	status := "success"
	if !success {
		status = "failed"
	}
	billsPaidTotal.WithLabelValues(status).Inc()
}

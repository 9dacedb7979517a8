package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	ActivityEntriesLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_entries_logged_total",
			Help: "Total number of daily activity entries written",
		},
		[]string{"kind", "completed"},
	)

	BadgesAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badges_awarded_total",
			Help: "Total number of streak badges awarded",
		},
		[]string{"kind", "threshold"},
	)

	// BadgeEvaluationFailures stage: streak | exists | insert
	BadgeEvaluationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badge_evaluation_failures_total",
			Help: "Failures swallowed while evaluating streak badges",
		},
		[]string{"kind", "stage"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ActivityEntriesLogged)
	prometheus.MustRegister(BadgesAwarded)
	prometheus.MustRegister(BadgeEvaluationFailures)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

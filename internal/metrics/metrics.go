package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Generation
	GenerationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flamesblue_generations_total",
			Help: "Total number of documents generated",
		},
	)
	GenerationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flamesblue_generation_errors_total",
			Help: "Generation requests rejected or failed",
		},
		[]string{"reason"}, // reason: empty_prompt|validation|internal
	)

	// HTTP
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flamesblue_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		GenerationsTotal,
		GenerationErrors,
		HTTPRequestDuration,
	)
}

// IncGeneration records one successful document generation.
func IncGeneration() {
	GenerationsTotal.Inc()
}

// IncGenerationError records a rejected or failed generation by reason.
func IncGenerationError(reason string) {
	GenerationErrors.WithLabelValues(reason).Inc()
}

// Handler exposes the prometheus endpoint through gin.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware observes request durations per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

package metrics

import (
	"strconv"
	"time"

	"shop-admin-api/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics records request counts and latencies for one service
type HTTPMetrics struct {
	service  string
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	uploads  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(service string, reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		service: service,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "media_operations_total",
				Help: "Media store operations by kind and outcome",
			},
			[]string{"service", "op", "outcome"},
		),
	}
	reg.MustRegister(m.requests, m.duration, m.uploads)
	return m
}

// Middleware records metrics after each request is processed
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if appErr, ok := apperror.As(err); ok {
			status = appErr.Status()
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		m.requests.WithLabelValues(m.service, c.Method(), path, statusStr).Inc()
		m.duration.WithLabelValues(m.service, c.Method(), path, statusStr).Observe(time.Since(start).Seconds())
		return err
	}
}

// MediaOp counts a media store operation ("put", "delete") and whether it failed.
func (m *HTTPMetrics) MediaOp(op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.uploads.WithLabelValues(m.service, op, outcome).Inc()
}

// Handler exposes the default Prometheus registry as a fiber handler
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

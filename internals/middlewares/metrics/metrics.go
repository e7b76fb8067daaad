package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classmanager_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classmanager_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// metrik bisnis
	EnrollmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classmanager_enrollment_changes_total",
			Help: "Roster changes by action",
		},
		[]string{"action"},
	)

	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classmanager_registrations_total",
			Help: "Registered accounts by role",
		},
		[]string{"role"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		EnrollmentsTotal,
		RegistrationsTotal,
	)
}

// RecordRequest mencatat satu request
func RecordRequest(method, route, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// PrometheusMiddleware: label route memakai pola route (mis. /api/classes/:id), bukan path mentah.
func PrometheusMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		RecordRequest(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start))
		return err
	}
}

// Handler mengekspos registry default untuk GET /metrics
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request counts, latencies and in-flight requests on reg.
func Metrics(reg prometheus.Registerer) fiber.Handler {
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "web420",
		Subsystem: "http",
		Name:      "inflight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "web420",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests handled.",
	}, []string{"method", "path", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "web420",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
	}, []string{"method", "path"})
	reg.MustRegister(inFlight, requests, duration)

	return func(c *fiber.Ctx) error {
		start := time.Now()
		inFlight.Inc()
		defer inFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		// Route patterns keep label cardinality bounded.
		path := c.Route().Path
		method := c.Method()
		requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

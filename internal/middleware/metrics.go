package middleware

import (
	"time"

	"homeserve_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records latency per route template, so /bookings/7 and
// /bookings/8 share a series. Unmatched routes are labelled "unmatched".
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.InFlight(1)
		start := time.Now()
		c.Next()
		m.InFlight(-1)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

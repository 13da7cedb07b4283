package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"chitragupta-dashboard/internal/metrics"
)

// MetricsMiddleware records request counts and latency by matched route so
// unknown paths do not create unbounded label values.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

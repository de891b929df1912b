package middleware

import (
	"time"

	"github.com/SscSPs/storefront_backend/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency per matched route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

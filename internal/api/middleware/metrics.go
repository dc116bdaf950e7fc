package middleware

import (
	"strconv"
	"time"

	"zucit/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies per matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

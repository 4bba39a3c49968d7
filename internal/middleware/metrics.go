package middleware

import (
	"strconv"
	"time"

	"digital_wallet/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency labelled by route template, not raw path
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/carkenya/internal/infrastructure/metrics"
)

// Metrics records in-flight requests, counts and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncInFlight()
		start := time.Now()
		defer func() {
			metrics.DecInFlight()
			metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
		}()
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/infrastructure/metrics"
)

// Metrics records request counts and latency labelled by route template, so
// /customers/1 and /customers/2 share a series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.RequestStarted()
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}

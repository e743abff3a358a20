package middleware

import (
	"time"

	"jobboard/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics reports every request to rec, labelled by the matched route template.
func Metrics(rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

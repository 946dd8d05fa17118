package middleware

import (
	"strconv"
	"time"

	"purchase-pipeline/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// NewMetricsMiddleware labels by route template so /purchases/:userid stays one series.
func NewMetricsMiddleware(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		reg.RequestsInFlight.Inc()
		defer reg.RequestsInFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		reg.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		reg.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

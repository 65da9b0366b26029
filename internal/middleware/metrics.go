package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/service"
)

// unmatchedRoute labels requests that hit no registered route, so probes for
// random paths cannot grow the label set.
const unmatchedRoute = "unmatched"

// Metrics records the duration and status of every routed request. Scrapes of
// skipPaths are not recorded.
func Metrics(metricsSvc *service.MetricsService, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, ok := skip[route]; ok {
			return
		}
		if route == "" {
			route = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

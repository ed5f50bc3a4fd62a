package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/precast-erp/backend/internal/infrastructure/telemetry"
)

// profilingSkipPrefixes are paths whose requests are not labelled
var profilingSkipPrefixes = []string{"/health", "/ready", "/swagger"}

// Profiling labels every request goroutine with its route pattern and method,
// so CPU and allocation profiles can be sliced per endpoint
func Profiling() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" || hasAnyPrefix(route, profilingSkipPrefixes) {
			c.Next()
			return
		}
		telemetry.Profiled(c.Request.Context(), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		}, telemetry.ProfilingLabelRoute, route, "method", c.Request.Method)
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

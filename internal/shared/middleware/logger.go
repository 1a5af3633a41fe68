package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger emits one structured line per request. The route template is logged
// alongside the raw path so cursor-bearing feed URLs aggregate per endpoint,
// and the viewer id is attached once the session gate has resolved one.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		route := c.FullPath()
		if route == "" {
			// Unmatched request (404); there is no template to report.
			route = path
		}

		event := log.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("route", route).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency_ms", time.Since(start)).
			Str("ip", c.ClientIP())

		if viewerID, ok := CurrentUserID(c); ok {
			event = event.Str("viewer_id", viewerID.String())
		}

		event.Msg("HTTP request")
	}
}

package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tradecoach/internal/logging"
)

// requestLogger attaches the logger to each request context and logs the
// request once it has been served.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := logging.WithOperation(logger, c.Request.Method+" "+c.FullPath())
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		logging.LogRequest(logger, c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apollotravel/apollo-migration/pkg/logger"
)

// loggerMiddleware carries the application logger into each request context
// and logs one line per completed request.
func loggerMiddleware(appCtx context.Context) gin.HandlerFunc {
	log := logger.FromContext(appCtx)
	return func(c *gin.Context) {
		start := time.Now()
		ctx := logger.ContextWithLogger(c.Request.Context(), log)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		log.Info("Request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

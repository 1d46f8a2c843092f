package middleware

import (
	"time"

	"go-hrms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger to the request context and
// writes one access line per request. It expects RequestID to run first but
// mints an ID itself when it did not.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	access := logger.Named("http.access")
	return func(c *gin.Context) {
		rid := c.GetString(requestIDKey)
		if rid == "" {
			rid = uuid.New().String()
			c.Set(requestIDKey, rid)
			c.Header(RequestIDHeader, rid)
		}

		reqLogger := logger.With(zap.String("request_id", rid))

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		access.Info("request completed",
			zap.String("request_id", rid),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

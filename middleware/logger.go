package middleware

import (
	"time"

	"concierge/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger attaches a request-scoped zap logger and logs each request once.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(utils.RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		logger := base.With(zap.String("requestID", reqID))
		c.Set(utils.RequestLoggerKey, logger)
		c.Header(utils.RequestIDHeader, reqID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", getClientIP(c)),
		)
	}
}

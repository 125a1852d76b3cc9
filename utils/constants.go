// File: utils/constants.go
package utils

import "time"

// ShutdownTimeout bounds graceful HTTP shutdown.
const ShutdownTimeout = 5 * time.Second

// RequestLoggerKey is the gin context key holding the request-scoped logger.
const RequestLoggerKey = "logger"

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

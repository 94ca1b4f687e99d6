package logger

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in and out of the HTTP gateway
const RequestIDHeader = "X-Request-ID"

// MiddlewareOptions configures the logger middleware
type MiddlewareOptions struct {
	// SkipPaths is a list of paths to skip logging
	SkipPaths []string
	// SkipPathPrefixes is a list of path prefixes to skip logging
	SkipPathPrefixes []string
}

// GinLogger returns a gin middleware logging every request
func GinLogger(logger *Logger) gin.HandlerFunc {
	return GinLoggerWithConfig(logger, MiddlewareOptions{})
}

// GinLoggerWithConfig returns a gin middleware that tags each request with a request
// id and logs it once it completes
func GinLoggerWithConfig(logger *Logger, opts MiddlewareOptions) gin.HandlerFunc {
	skipPaths := make(map[string]bool)
	for _, path := range opts.SkipPaths {
		skipPaths[path] = true
	}

	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)

		path := c.Request.URL.Path
		if skipPaths[path] {
			c.Next()
			return
		}
		for _, prefix := range opts.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		start := time.Now()
		query := c.Request.URL.RawQuery

		c.Next()

		statusCode := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", statusCode),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case statusCode >= 500:
			logger.Error("HTTP Request", fields...)
		case statusCode >= 400:
			logger.Warn("HTTP Request", fields...)
		default:
			logger.Info("HTTP Request", fields...)
		}
	}
}

// GinRecovery returns a gin middleware for recovering from panics
func GinRecovery(logger *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithContext(c.Request.Context()).Error("Panic recovered",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", err),
					zap.Stack("stacktrace"),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()

		c.Next()
	}
}

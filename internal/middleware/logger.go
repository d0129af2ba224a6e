package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"

	"github.com/lvyanru/startupradar/pkg/logger"
)

// RequestIDKey header carrying the request id
const RequestIDKey = "X-Request-ID"

// Logger assigns a request id, stores a request-scoped logger in the context
// and logs the outcome of every request except health probes.
func Logger(base *slog.Logger) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		path := string(c.Path())

		requestID := string(c.Request.Header.Peek(RequestIDKey))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header.Set(RequestIDKey, requestID)

		reqLogger := logger.WithRequestID(base, requestID).With(
			"method", string(c.Method()),
			"path", path,
		)
		ctx = logger.WithContext(ctx, reqLogger)

		c.Next(ctx)

		if isProbe(path) {
			return
		}

		latency := time.Since(start)
		status := c.Response.StatusCode()
		attrs := []any{
			"status", status,
			"client_ip", c.ClientIP(),
			"latency_ms", latency.Milliseconds(),
		}
		switch {
		case status >= 500:
			reqLogger.Error("request completed with server error", attrs...)
		case status >= 400:
			reqLogger.Warn("request completed with client error", attrs...)
		default:
			reqLogger.Info("request completed", attrs...)
		}
	}
}

func isProbe(path string) bool {
	return path == "/ping" || path == "/health/live" || path == "/health/ready"
}

// GetRequestID returns the request id set by Logger
func GetRequestID(c *app.RequestContext) string {
	return string(c.Response.Header.Peek(RequestIDKey))
}

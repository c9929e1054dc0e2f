// Package context carries per-request and per-job values through
// context.Context and echo.Context.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type scopeKey string

const (
	keyRequestID scopeKey = "request_id"
	keyJob       scopeKey = "job"
	keyLogger    scopeKey = "logger"

	// HeaderXRequestID is the header a request ID is read from and echoed back on.
	HeaderXRequestID = "X-Request-Id"
)

// RequestID returns the request ID stored on c by the request ID middleware.
func RequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

// SetRequestID stores the request ID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestIDFrom returns the request ID carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithJob marks ctx as belonging to a scheduled or manually triggered job run.
func WithJob(ctx context.Context, job string) context.Context {
	return context.WithValue(ctx, keyJob, job)
}

// JobFrom returns the job name carried by ctx, or "" outside a job run.
func JobFrom(ctx context.Context) string {
	job, _ := ctx.Value(keyJob).(string)

	return job
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// Logger returns the scoped logger carried by ctx, falling back to fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

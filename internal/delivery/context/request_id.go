// Package context carries request-scoped values between delivery and use case layers.
package context

import (
	"context"
	"log/slog"

	"apikit/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values stored in context.Context and echo.Context.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is read from callers and echoed back on responses.
	HeaderXRequestID = constants.HeaderRequestID
)

// maxRequestIDLength bounds caller-supplied IDs before they reach logs and mail jobs.
const maxRequestIDLength = 128

// ValidRequestID reports whether id can be propagated as-is: non-empty, at
// most maxRequestIDLength bytes and limited to [A-Za-z0-9._:-].
func ValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch ch := id[i]; {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-', ch == '_', ch == '.', ch == ':':
		default:
			return false
		}
	}

	return true
}

// ResolveRequestID returns the first valid candidate, or a fresh UUID.
func ResolveRequestID(candidates ...string) string {
	for _, id := range candidates {
		if ValidRequestID(id) {
			return id
		}
	}

	return uuid.NewString()
}

// GetRequestID returns the ID assigned by the request ID middleware. Requests
// that bypassed it get a fresh UUID so envelopes always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID stored in ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithRequestScope stores requestID and a logger tagged with it in ctx.
// The tagged logger is returned for callers that log before passing ctx on.
func WithRequestScope(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	scoped := base.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, scoped), scoped
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

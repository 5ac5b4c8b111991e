// Package middleware holds echo middleware shared by every HTTP delivery.
package middleware

import (
	"log/slog"
	"time"

	"apikit/config"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request when debug is on
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status
	if err != nil {
		// the central error handler has not written the response yet
		if code := statusOf(err); code != 0 {
			status = code
		}
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if user, ok := deliverycontext.GetUser(c); ok {
		fields = append(fields, slog.String("user_id", user.ID.Hex()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP Request", fields...)
}

type httpCoder interface {
	HTTPCode() int
}

func statusOf(err error) int {
	var he *echo.HTTPError
	var coder httpCoder
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.As(err, &coder):
		return coder.HTTPCode()
	default:
		return 500
	}
}

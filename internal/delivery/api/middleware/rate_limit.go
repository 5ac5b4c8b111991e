package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	deliverycontext "apikit/internal/delivery/context"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/service"
	"apikit/internal/errors"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per client address and route.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates the middleware. A nil limiter disables throttling.
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Handle consumes one token per request and answers 429 when the bucket is empty.
// Limiter failures let the request through.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if m.limiter == nil {
		return next
	}

	return func(c echo.Context) error {
		key := rateKey(c)
		allowed, retryAfter, err := m.limiter.Allow(c.Request().Context(), key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rate limiter unavailable", slog.String("key", key), slog.Any("error", err))

			return next(c)
		}

		if !allowed {
			secs := int(math.Ceil(retryAfter.Seconds()))
			c.Response().Header().Set("Retry-After", strconv.Itoa(max(secs, 0)))

			return errors.WithStack(domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}

func rateKey(c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}

	return strings.Join([]string{ip, c.Request().Method + " " + c.Path()}, ":")
}

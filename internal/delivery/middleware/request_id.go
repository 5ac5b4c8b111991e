package middleware

import (
	"log/slog"

	deliverycontext "apikit/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns each request an ID and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process keeps a well-formed X-Request-Id from the caller and replaces
// anything else with a UUID. The ID is echoed on the response and flows into
// the request context, where mail jobs pick it up.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestID := deliverycontext.ResolveRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.WithRequestScope(req.Context(), m.logger, requestID)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

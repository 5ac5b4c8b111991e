package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"apikit/internal/delivery/api/response"
	deliverycontext "apikit/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const healthTimeout = 2 * time.Second

// Pinger checks connectivity to the document store.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// HealthHandler reports process and database health.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(client *mongo.Client, logger *slog.Logger) *HealthHandler {
	return newHealthHandler(client, logger)
}

func newHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Check answers 200 when the database responds and 503 otherwise.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database is unreachable", nil)
	}

	return response.OK(c, map[string]string{"status": "ok"})
}

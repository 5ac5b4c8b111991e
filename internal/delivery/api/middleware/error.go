package middleware

import (
	"log/slog"
	"net/http"

	"apikit/config"
	"apikit/internal/delivery/api/response"
	deliverycontext "apikit/internal/delivery/context"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/repository"
	"apikit/internal/errors"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Domain errors carry their own status
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err))
		}
		m.write(c, err, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), detailsOf(appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		switch msg := httpErr.Message.(type) {
		case string:
			message = msg
		case error:
			message = msg.Error()
		}
		if httpErr.Code == http.StatusNotFound {
			m.write(c, err, domainerrors.ErrNotFound.HTTPCode(), domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message(), nil)

			return
		}
		m.write(c, err, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Store write errors are the caller's fault
	if isStoreInputError(err) {
		m.write(c, err, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), errors.Cause(err).Error(), nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	message := domainerrors.ErrInternalError.Message()
	if !m.production {
		message = err.Error()
	}
	m.write(c, err, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), message, nil)
}

func (m *ErrorMiddleware) write(c echo.Context, err error, status int, code, message string, details any) {
	var writeErr error
	if m.production {
		writeErr = response.Error(c, status, code, message, details)
	} else {
		writeErr = response.ErrorWithStack(c, status, code, message, details, errors.StackTrace(err))
	}
	if writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func detailsOf(err domainerrors.AppError) any {
	if d := err.Details(); d != "" {
		return d
	}

	return nil
}

func isStoreInputError(err error) bool {
	if errors.Is(err, repository.ErrDuplicateKey) || mongo.IsDuplicateKeyError(err) {
		return true
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return true
	}

	var bulkErr mongo.BulkWriteException

	return errors.As(err, &bulkErr)
}

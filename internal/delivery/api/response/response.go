// Package response writes the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "apikit/internal/delivery/context"
	domainerrors "apikit/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{Data: data, Meta: meta(c)})
}

// OK returns data with status 200
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created returns data with status 201
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// NoContent returns an empty 204
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response. Details are dropped for 5xx, 401 and 403.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	return writeError(c, statusCode, &ErrorBody{
		Code:    errorCode,
		Message: message,
		Details: details,
	})
}

// ErrorWithStack is Error plus a stack trace, for non-production environments.
func ErrorWithStack(c echo.Context, statusCode int, errorCode, message string, details any, stack string) error {
	return writeError(c, statusCode, &ErrorBody{
		Code:    errorCode,
		Message: message,
		Details: details,
		Stack:   stack,
	})
}

func writeError(c echo.Context, statusCode int, info *ErrorBody) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		info.Details = nil
	}

	return c.JSON(statusCode, errorEnvelope{Error: info, Meta: meta(c)})
}

// AppError writes err using its own status, code and message.
func AppError(c echo.Context, err domainerrors.AppError) error {
	var details any
	if d := err.Details(); d != "" {
		details = d
	}

	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), details)
}

// errorEnvelope omits the data key entirely.
type errorEnvelope struct {
	Error *ErrorBody `json:"error"`
	Meta  Meta       `json:"meta"`
}

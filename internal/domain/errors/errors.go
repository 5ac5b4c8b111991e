package errors

import (
	"net/http"

	"apikit/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original sentinel with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches BaseErrors by error code so detailed copies compare equal to their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"Email already taken",
		"",
	)

	// Authentication-related errors
	ErrIncorrectCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrAuthenticationFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"Authentication failed",
		"",
	)

	ErrPleaseAuthenticate = NewBaseError(
		http.StatusUnauthorized,
		"PLEASE_AUTHENTICATE",
		"Please authenticate",
		"",
	)

	ErrPasswordResetFailed = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_RESET_FAILED",
		"Password reset failed",
		"",
	)

	ErrEmailVerificationFailed = NewBaseError(
		http.StatusUnauthorized,
		"EMAIL_VERIFICATION_FAILED",
		"Email verification failed",
		"",
	)

	ErrInvalidTokenType = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN_TYPE",
		"Invalid token type",
		"",
	)

	ErrUnrecognizedToken = NewBaseError(
		http.StatusForbidden,
		"UNRECOGNIZED_TOKEN",
		"Unrecognized token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You don't have enough permissions",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrNoUserWithEmail = NewBaseError(
		http.StatusNotFound,
		"NO_USER_WITH_EMAIL",
		"No integrated user found with this information",
		"",
	)

	// Upload-related errors
	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"File type is not allowed",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"File is too large",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"URL Not Found",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal Server Error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}

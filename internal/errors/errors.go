// Package errors is the single import for error handling: sentinel matching
// comes from the standard library, wrapping and stack traces from pkg/errors.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join keeps every joined error matchable with Is and As.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with message and the caller's stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf builds a new error carrying the caller's stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// StackTrace renders err with the stack recorded by the first pkg/errors
// wrapper in its chain. Errors without a stack render as Error().
func StackTrace(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("%+v", err)
}

// Cause unwraps pkg/errors annotations down to the innermost error.
//
//nolint:wrapcheck // passthrough
func Cause(err error) error {
	return pkgerrors.Cause(err)
}

// Package apperr classifies service-layer errors so HTTP handlers can map
// them to status codes without inspecting error strings.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks errors for requests that reference a record that does
// not exist. Services wrap it with a record-specific message.
var ErrNotFound = errors.New("not found")

type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

// Validationf builds a validation error with a field-specific message.
// Handlers translate validation errors to HTTP 400.
func Validationf(format string, args ...interface{}) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err (or anything it wraps) is a validation
// error.
func IsValidation(err error) bool {
	var ve *validationError
	return errors.As(err, &ve)
}

// NotFoundf builds an error wrapping ErrNotFound. Handlers translate it to
// HTTP 404.
func NotFoundf(format string, args ...interface{}) error {
	args = append(args, ErrNotFound)
	return fmt.Errorf(format+": %w", args...)
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Package errs defines the error taxonomy shared by the calculation engine.
// The engine never logs or swallows errors; handlers at the HTTP boundary map
// these types onto status codes.
package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups of unknown catalog identifiers (section, material,
// bolt grade, diameter). Wrap it with context via NotFound.
var ErrNotFound = errors.New("not found")

// ErrValidation marks rejected input. Wrap it with context via Validation.
var ErrValidation = errors.New("invalid input")

// NotFound reports an unknown identifier in the named catalog.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// Validation reports an invalid field with its offending value.
func Validation(field string, value interface{}, reason string) error {
	return fmt.Errorf("field %s=%v: %s: %w", field, value, reason, ErrValidation)
}

// Validationf reports an invalid input without a single offending field.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// IsNotFound reports whether err is a catalog miss.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err is an input rejection.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

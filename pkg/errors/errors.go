// Package errors provides structured error types for the Figment library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes group by pipeline stage:
//   - Binding errors (MISSING_COLUMN, LENGTH_MISMATCH, TYPE_MISMATCH) are
//     raised while resolving a design's column references against a data
//     source, before any layout work starts.
//   - Scale errors (INVALID_DOMAIN, UNBOUNDED_AXIS) are raised while fitting
//     axis domains and abort the whole figure.
//   - Design errors (INCONSISTENT_DESIGN, INCONSISTENT_DATA) are raised by
//     structural validation.
//
// Layout and theme resolution deliberately have no error channel: layout
// clamps, themes fall back.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingColumn, "column %q not found", name)
//	if errors.Is(err, errors.ErrCodeMissingColumn) {
//	    // Handle binding error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "load design %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidTheme  Code = "INVALID_THEME"

	// Data binding errors
	ErrCodeMissingDataSource Code = "MISSING_DATA_SOURCE"
	ErrCodeMissingColumn     Code = "MISSING_COLUMN"
	ErrCodeLengthMismatch    Code = "LENGTH_MISMATCH"
	ErrCodeTypeMismatch      Code = "TYPE_MISMATCH"

	// Scale and axis errors
	ErrCodeInvalidDomain Code = "INVALID_DOMAIN"
	ErrCodeUnboundedAxis Code = "UNBOUNDED_AXIS"

	// Design consistency errors
	ErrCodeInconsistentDesign Code = "INCONSISTENT_DESIGN"
	ErrCodeInconsistentData   Code = "INCONSISTENT_DATA"

	// Resource errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

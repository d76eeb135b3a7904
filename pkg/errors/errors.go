// Package errors provides structured error types for the focusgrid tools.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors, including navigation invariant
//     violations
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLayout, "layout %q has no elements", id)
//	if errors.Is(err, errors.ErrCodeInvalidLayout) {
//	    // Handle validation error
//	}
//
//	// Attach a code to an error returned by the navigation engine
//	err = errors.Classify(navErr)
package errors

import (
	"errors"
	"fmt"

	"github.com/matzehuels/focusgrid/pkg/geom"
	"github.com/matzehuels/focusgrid/pkg/grid"
	"github.com/matzehuels/focusgrid/pkg/nav"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidDirective  Code = "INVALID_DIRECTIVE"
	ErrCodeInvalidLayout     Code = "INVALID_LAYOUT"
	ErrCodeInvalidIdentifier Code = "INVALID_IDENTIFIER"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeLayoutNotFound Code = "LAYOUT_NOT_FOUND"
	ErrCodeFocusNotFound  Code = "FOCUS_NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Operation errors
	ErrCodeNotGrowable Code = "NOT_GROWABLE"
	ErrCodeUnsupported Code = "UNSUPPORTED"

	// Internal errors
	ErrCodeInternal  Code = "INTERNAL_ERROR"
	ErrCodeInvariant Code = "INTERNAL_INVARIANT"
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

// classes maps engine sentinels to codes. Order matters: the first match wins.
var classes = []struct {
	target error
	code   Code
}{
	{nav.ErrInvalidDirective, ErrCodeInvalidDirective},
	{nav.ErrUnknownFocus, ErrCodeFocusNotFound},
	{nav.ErrNotGrowable, ErrCodeNotGrowable},
	{nav.ErrMixedLayout, ErrCodeInvalidLayout},
	{nav.ErrInvalidGrow, ErrCodeInvalidLayout},
	{nav.ErrDuplicateLayout, ErrCodeInvalidLayout},
	{nav.ErrInvalidInsert, ErrCodeInternal},
	{grid.ErrInvalidSize, ErrCodeInvalidLayout},
	{grid.ErrOverlap, ErrCodeInvalidLayout},
	{grid.ErrOutOfBounds, ErrCodeInvalidLayout},
	{geom.ErrInvalidRect, ErrCodeInvalidLayout},
	{geom.ErrNegativeCoordinate, ErrCodeInvalidLayout},
}

// Classify attaches a code to err. Errors that already carry a code are
// returned unchanged. Navigation invariant violations map to
// ErrCodeInvariant; unknown layouts outside navigation map to
// ErrCodeLayoutNotFound. Unrecognized errors map to ErrCodeInternal.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if GetCode(err) != "" {
		return err
	}
	for _, c := range classes {
		if errors.Is(err, c.target) {
			return Wrap(c.code, err, "%s", c.target.Error())
		}
	}
	if errors.Is(err, nav.ErrUnknownLayout) && !errors.Is(err, nav.ErrDanglingReference) {
		return Wrap(ErrCodeLayoutNotFound, err, "%s", nav.ErrUnknownLayout.Error())
	}
	if nav.IsInvariantViolation(err) {
		return Wrap(ErrCodeInvariant, err, "navigation state is inconsistent")
	}
	return Wrap(ErrCodeInternal, err, "unexpected error")
}

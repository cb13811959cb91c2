// Package errors provides coded domain errors. Services translate store
// sentinel errors into these; the transport layer maps codes to HTTP
// statuses without inspecting messages.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for callers that need to branch on it.
type Code string

const (
	// CodeInvalidInput marks input that fails a domain invariant at a trust
	// boundary (malformed id, empty required field).
	CodeInvalidInput Code = "invalid_input"
	// CodeBadRequest marks a malformed request at the transport boundary.
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks a requested or referenced aggregate that does not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict marks a uniqueness violation (duplicate course title).
	CodeConflict Code = "conflict"
	// CodeInternal marks an opaque infrastructure failure. Handlers never
	// inspect it further.
	CodeInternal Code = "internal"
)

// Error is a domain error carrying a classification code. The wrapped cause,
// if any, is preserved for logging but never exposed to clients.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf returns the code of err, or CodeInternal when err carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// Package errors defines the typed error values returned by the similarity
// engine. Every failure carries a machine-readable code plus a short
// message; kernels never panic, they return one of these.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies engine failures.
type Code uint8

const (
	// CodeInvalidInput marks input that violates a kernel precondition,
	// such as unequal-length strings for Hamming or an oversized string.
	CodeInvalidInput Code = iota + 1

	// CodeInvalidConfiguration marks a missing or out-of-range parameter.
	CodeInvalidConfiguration

	// CodeComputationOverflow marks an internal invariant violated during
	// computation. The call fails; engine state is unchanged.
	CodeComputationOverflow

	// CodeThreadingError marks an async submission after shutdown.
	CodeThreadingError

	// CodeUnknown is the catch-all for unexpected failures and carries the
	// underlying message.
	CodeUnknown
)

// String returns the canonical code name.
func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "invalid_input"
	case CodeInvalidConfiguration:
		return "invalid_configuration"
	case CodeComputationOverflow:
		return "computation_overflow"
	case CodeThreadingError:
		return "threading_error"
	case CodeUnknown:
		return "unknown"
	}
	return "unknown"
}

// Error is the concrete error type for all engine failures.
type Error struct {
	Code       Code
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Underlying != nil && e.Operation != "":
		return fmt.Sprintf("%s: %s %s: %v", e.Code, e.Operation, e.Message, e.Underlying)
	case e.Underlying != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	case e.Operation != "":
		return fmt.Sprintf("%s: %s %s", e.Code, e.Operation, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error { return e.Underlying }

// WithOperation attaches the failing operation name.
func (e *Error) WithOperation(op string) *Error {
	e.Operation = op
	return e
}

// NewInvalidInput creates an InvalidInput error.
func NewInvalidInput(message string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message}
}

// NewInvalidInputf creates an InvalidInput error with a formatted message.
func NewInvalidInputf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidConfiguration creates an InvalidConfiguration error.
func NewInvalidConfiguration(message string) *Error {
	return &Error{Code: CodeInvalidConfiguration, Message: message}
}

// NewInvalidConfigurationf creates an InvalidConfiguration error with a
// formatted message.
func NewInvalidConfigurationf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidConfiguration, Message: fmt.Sprintf(format, args...)}
}

// NewComputationOverflow creates a ComputationOverflow error.
func NewComputationOverflow(message string, underlying error) *Error {
	return &Error{Code: CodeComputationOverflow, Message: message, Underlying: underlying}
}

// NewThreadingError creates a ThreadingError.
func NewThreadingError(message string) *Error {
	return &Error{Code: CodeThreadingError, Message: message}
}

// NewUnknown wraps an unexpected failure.
func NewUnknown(message string, underlying error) *Error {
	return &Error{Code: CodeUnknown, Message: message, Underlying: underlying}
}

// CodeOf extracts the Code from err, or CodeUnknown when err is not an
// engine error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// Package errors provides standardized error handling patterns for wspull.
// It includes error classification, standard error variables, and helper functions
// for consistent error wrapping and classification across the library.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorTransport represents failures surfaced by the underlying transport
	ErrorTransport ErrorClass = iota
	// ErrorClosed represents failures caused by connection teardown
	ErrorClosed
	// ErrorDecode represents failures to interpret a payload as the requested shape
	ErrorDecode
	// ErrorValidation represents failures of a caller-supplied schema check
	ErrorValidation
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransport:
		return "transport"
	case ErrorClosed:
		return "closed"
	case ErrorDecode:
		return "decode"
	case ErrorValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Connection lifecycle errors
	ErrConnectionClosed  = errors.New("connection closed")
	ErrConnectionFailed  = errors.New("connection failed")
	ErrNotConnected      = errors.New("not connected")
	ErrHandshakeRejected = errors.New("handshake rejected")

	// Payload errors
	ErrUnsupportedFrame = errors.New("unsupported frame kind")
	ErrDecodeFailed     = errors.New("payload decode failed")
	ErrValidationFailed = errors.New("schema validation failed")
	ErrInvalidSchema    = errors.New("invalid schema document")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsTransport reports whether an error was surfaced by the transport layer
func IsTransport(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorTransport
	}

	return errors.Is(err, ErrConnectionFailed) ||
		errors.Is(err, ErrNotConnected) ||
		errors.Is(err, ErrHandshakeRejected)
}

// IsClosed reports whether an error was caused by connection teardown
func IsClosed(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorClosed
	}

	return errors.Is(err, ErrConnectionClosed)
}

// IsDecode reports whether an error is a local payload decode failure
func IsDecode(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorDecode
	}

	return errors.Is(err, ErrDecodeFailed) || errors.Is(err, ErrUnsupportedFrame)
}

// IsValidation reports whether an error came from a caller-supplied validator
func IsValidation(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorValidation
	}

	return errors.Is(err, ErrValidationFailed)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	switch {
	case IsClosed(err):
		return ErrorClosed
	case IsDecode(err):
		return ErrorDecode
	case IsValidation(err):
		return ErrorValidation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorTransport
	default:
		// Anything not raised locally came through the wire
		return ErrorTransport
	}
}

// newClassified creates a new classified error
// This is an internal helper - use the Wrap* functions instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapTransport wraps an error as a transport failure with context
func WrapTransport(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorTransport, wrappedErr, component, method, wrappedErr.Error())
}

// WrapClosed wraps an error as a connection-teardown failure with context
func WrapClosed(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorClosed, wrappedErr, component, method, wrappedErr.Error())
}

// WrapDecode wraps an error as a payload decode failure with context
func WrapDecode(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorDecode, wrappedErr, component, method, wrappedErr.Error())
}

// WrapValidation wraps an error as a validation failure with context
func WrapValidation(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorValidation, wrappedErr, component, method, wrappedErr.Error())
}

// Package errors provides standardized error handling patterns for wspull.
//
// # Overview
//
// The errors package implements a four-class error classification system matching
// the failure taxonomy of a pull-based connection adapter: Transport (surfaced by
// the underlying socket), Closed (connection teardown), Decode (payload could not
// be interpreted as the requested shape), and Validation (caller-supplied schema
// check failed).
//
// This classification lets consumers distinguish failure kinds without error
// string matching. A read loop can treat Decode and Validation errors as
// per-message problems while treating Transport and Closed errors as terminal.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if conn.State() == wspull.StateClosed {
//	    return errors.ErrConnectionClosed
//	}
//
// Wrap errors with context for debugging:
//
//	if err := json.Unmarshal(payload, &out); err != nil {
//	    return errors.WrapDecode(err, "Conn", "ReadJSON", "unmarshal payload")
//	}
//
// Check classification in consumer code:
//
//	msg, err := conn.ReadMessage(ctx)
//	if err != nil {
//	    switch {
//	    case errors.IsDecode(err):
//	        // Bad payload - skip and keep reading
//	    case errors.IsClosed(err):
//	        // Connection is gone - stop the loop
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Four wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransport(err, "Conn", "HandleError", "transport failure")
//	errors.WrapClosed(err, "Conn", "HandleClose", "connection teardown")
//	errors.WrapDecode(err, "Conn", "ReadJSON", "unmarshal payload")
//	errors.WrapValidation(err, "Validator", "Parse", "schema validation")
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection. Classification is
// preserved through error chains:
//
//	wrapped := errors.WrapClosed(errors.ErrConnectionClosed, "Conn", "read", "drain")
//	errors.IsClosed(wrapped) // true
//	errors.Is(wrapped, errors.ErrConnectionClosed) // true
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors

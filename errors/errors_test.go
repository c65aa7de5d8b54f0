package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransport, "transport"},
		{ErrorClosed, "closed"},
		{ErrorDecode, "decode"},
		{ErrorValidation, "validation"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsClosed(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"connection closed", ErrConnectionClosed, true},
		{"wrapped closed", fmt.Errorf("read: %w", ErrConnectionClosed), true},
		{"classified closed", WrapClosed(errors.New("going away"), "Conn", "HandleClose", "drain"), true},
		{"decode failure", ErrDecodeFailed, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsClosed(test.err); got != test.expected {
				t.Errorf("IsClosed(%v) = %v, want %v", test.err, got, test.expected)
			}
		})
	}
}

func TestIsDecode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"decode failed", ErrDecodeFailed, true},
		{"unsupported frame", ErrUnsupportedFrame, true},
		{"classified decode", WrapDecode(errors.New("bad json"), "Conn", "ReadJSON", "unmarshal"), true},
		{"validation failed", ErrValidationFailed, false},
		{"connection closed", ErrConnectionClosed, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsDecode(test.err); got != test.expected {
				t.Errorf("IsDecode(%v) = %v, want %v", test.err, got, test.expected)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(ErrValidationFailed) {
		t.Error("expected ErrValidationFailed to be a validation error")
	}
	if !IsValidation(WrapValidation(errors.New("age must be number"), "Validator", "Parse", "schema validation")) {
		t.Error("expected classified error to be a validation error")
	}
	if IsValidation(ErrDecodeFailed) {
		t.Error("decode failure must not classify as validation")
	}
}

func TestIsTransport(t *testing.T) {
	if !IsTransport(ErrConnectionFailed) {
		t.Error("expected ErrConnectionFailed to be a transport error")
	}
	if !IsTransport(WrapTransport(errors.New("broken pipe"), "Conn", "HandleError", "transport failure")) {
		t.Error("expected classified error to be a transport error")
	}
	if IsTransport(WrapDecode(errors.New("bad json"), "Conn", "ReadJSON", "unmarshal")) {
		t.Error("decode failure must not classify as transport")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"closed", ErrConnectionClosed, ErrorClosed},
		{"decode", ErrUnsupportedFrame, ErrorDecode},
		{"validation", ErrValidationFailed, ErrorValidation},
		{"context canceled", context.Canceled, ErrorTransport},
		{"context deadline", context.DeadlineExceeded, ErrorTransport},
		{"unknown", errors.New("mystery"), ErrorTransport},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.err); got != test.expected {
				t.Errorf("Classify(%v) = %v, want %v", test.err, got, test.expected)
			}
		})
	}
}

func TestWrapFormat(t *testing.T) {
	base := errors.New("unexpected EOF")
	err := Wrap(base, "Conn", "readFrame", "await frame")

	expected := "Conn.readFrame: await frame failed: unexpected EOF"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap to base error")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "C", "m", "a") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if WrapTransport(nil, "C", "m", "a") != nil {
		t.Error("WrapTransport(nil) should return nil")
	}
	if WrapClosed(nil, "C", "m", "a") != nil {
		t.Error("WrapClosed(nil) should return nil")
	}
	if WrapDecode(nil, "C", "m", "a") != nil {
		t.Error("WrapDecode(nil) should return nil")
	}
	if WrapValidation(nil, "C", "m", "a") != nil {
		t.Error("WrapValidation(nil) should return nil")
	}
}

func TestClassifiedError_Fields(t *testing.T) {
	err := WrapDecode(errors.New("invalid character"), "Conn", "ReadJSON", "unmarshal payload")

	var ce *ClassifiedError
	if !errors.As(err, &ce) {
		t.Fatal("expected a *ClassifiedError in the chain")
	}
	if ce.Class != ErrorDecode {
		t.Errorf("expected decode class, got %s", ce.Class)
	}
	if ce.Component != "Conn" || ce.Operation != "ReadJSON" {
		t.Errorf("unexpected context fields: %s.%s", ce.Component, ce.Operation)
	}
	if !strings.Contains(ce.Error(), "unmarshal payload failed") {
		t.Errorf("message missing action context: %s", ce.Error())
	}
}

func TestClassificationPreservedThroughChains(t *testing.T) {
	inner := WrapValidation(errors.New("missing field"), "Validator", "Parse", "schema validation")
	outer := fmt.Errorf("ReadValidated: %w", inner)

	if !IsValidation(outer) {
		t.Error("classification must survive additional wrapping")
	}
	if Classify(outer) != ErrorValidation {
		t.Errorf("Classify = %v, want validation", Classify(outer))
	}
}

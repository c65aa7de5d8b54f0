package wspull

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/c360/wspull/errors"
)

// Validator turns a raw payload into a validated value or reports why it
// cannot. schema.Validator satisfies it; so does any type with a
// structurally compatible Parse method.
type Validator interface {
	Parse(data []byte) (any, error)
}

// ReadText returns the next frame's payload as a string. Text coercion
// never fails; the only failure modes are the underlying read's.
func (c *Conn) ReadText(ctx context.Context) (string, error) {
	f, err := c.readFrame(ctx, "ReadText")
	if err != nil {
		return "", err
	}
	return string(f.payload), nil
}

// ReadJSON reads the next frame and unmarshals its payload into out.
// A parse failure is a decode-class error, distinct from transport and
// close failures.
func (c *Conn) ReadJSON(ctx context.Context, out any) error {
	f, err := c.readFrame(ctx, "ReadJSON")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(f.payload, out); err != nil {
		c.trackError("decode_error")
		return errors.WrapDecode(err, "Conn", "ReadJSON", "unmarshal payload")
	}
	return nil
}

// ReadValidated reads the next frame and passes its payload through v.
// The validator's own classification is preserved: malformed JSON surfaces
// as a decode error, a schema violation as a validation error.
func (c *Conn) ReadValidated(ctx context.Context, v Validator) (any, error) {
	f, err := c.readFrame(ctx, "ReadValidated")
	if err != nil {
		return nil, err
	}

	value, err := v.Parse(f.payload)
	if err != nil {
		if errors.IsDecode(err) {
			c.trackError("decode_error")
			return nil, err
		}
		c.trackError("validation_error")
		if errors.IsValidation(err) {
			return nil, err
		}
		return nil, errors.WrapValidation(err, "Conn", "ReadValidated", "run validator")
	}
	return value, nil
}

// ReadMessage returns the next frame as a tagged Message. A frame whose
// wire kind is neither text nor binary fails with a decode error rather
// than producing a malformed Message.
func (c *Conn) ReadMessage(ctx context.Context) (Message, error) {
	f, err := c.readFrame(ctx, "ReadMessage")
	if err != nil {
		return Message{}, err
	}

	switch f.kind {
	case FrameText:
		return Message{Kind: KindText, Text: string(f.payload)}, nil
	case FrameBinary:
		return Message{Kind: KindBinary, Data: f.payload}, nil
	default:
		c.trackError("decode_error")
		return Message{}, errors.WrapDecode(
			fmt.Errorf("%w: frame kind %d", errors.ErrUnsupportedFrame, f.kind),
			"Conn", "ReadMessage", "classify frame")
	}
}

// trackError records an error occurrence in the connection metrics
func (c *Conn) trackError(errType string) {
	c.metrics.errorOccurred(errType)
}

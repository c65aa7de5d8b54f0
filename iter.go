package wspull

import (
	"context"
	"iter"
)

// Messages returns an unbounded lazy sequence of tagged messages. The
// sequence ends the first time a read fails: the error is yielded once and
// iteration stops. It never terminates silently, and a stopped sequence
// does not resume.
func (c *Conn) Messages(ctx context.Context) iter.Seq2[Message, error] {
	return func(yield func(Message, error) bool) {
		for {
			msg, err := c.ReadMessage(ctx)
			if err != nil {
				yield(Message{}, err)
				return
			}
			if !yield(msg, nil) {
				return
			}
		}
	}
}

// JSONValues returns an unbounded lazy sequence of decoded JSON values,
// with the same termination semantics as Messages. Each payload is
// unmarshalled into the generic JSON representation (map[string]any,
// []any, string, float64, bool, nil).
func (c *Conn) JSONValues(ctx context.Context) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for {
			var value any
			if err := c.ReadJSON(ctx, &value); err != nil {
				yield(nil, err)
				return
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Validated returns an unbounded lazy sequence of validator-approved
// values, with the same termination semantics as Messages. A payload that
// fails validation terminates the sequence like any other read failure.
func (c *Conn) Validated(ctx context.Context, v Validator) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for {
			value, err := c.ReadValidated(ctx, v)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

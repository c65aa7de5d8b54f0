package wspull

import (
	"encoding/json"

	"github.com/c360/wspull/errors"
)

// WriteText sends value as a text frame
func (c *Conn) WriteText(value string) error {
	return c.send(FrameText, []byte(value), "WriteText")
}

// WriteJSON marshals value and sends it as a text frame
func (c *Conn) WriteJSON(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		c.trackError("decode_error")
		return errors.WrapDecode(err, "Conn", "WriteJSON", "marshal value")
	}
	return c.send(FrameText, data, "WriteJSON")
}

// Write sends payload as a binary frame
func (c *Conn) Write(payload []byte) error {
	return c.send(FrameBinary, payload, "Write")
}

// Close forwards to the transport's close primitive. Draining of pending
// reads happens reactively when the transport's close notification fires,
// not here.
func (c *Conn) Close(code int, reason string) error {
	if c.transport == nil {
		return errors.WrapTransport(errors.ErrNotConnected, "Conn", "Close", "close transport")
	}
	if err := c.transport.Close(code, reason); err != nil {
		c.trackError("close_error")
		return errors.WrapTransport(err, "Conn", "Close", "send close frame")
	}
	return nil
}

// send is the fire-and-forget passthrough under every write operation
func (c *Conn) send(kind FrameKind, payload []byte, op string) error {
	if c.transport == nil {
		return errors.WrapTransport(errors.ErrNotConnected, "Conn", op, "send frame")
	}
	if err := c.transport.Send(kind, payload); err != nil {
		c.trackError("send_error")
		return errors.WrapTransport(err, "Conn", op, "send frame")
	}
	c.metrics.frameSent(kind)
	return nil
}

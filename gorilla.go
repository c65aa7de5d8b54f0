package wspull

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/c360/wspull/errors"
)

const (
	// defaultHandshakeTimeout bounds the WebSocket handshake when the
	// caller does not supply a dialer
	defaultHandshakeTimeout = 45 * time.Second

	// closeWriteTimeout bounds the write of the outgoing close frame
	closeWriteTimeout = 5 * time.Second

	// closeReadGrace bounds how long the read loop waits for the peer's
	// close reply after we initiate teardown
	closeReadGrace = 5 * time.Second

	closeCodeGoingAway = websocket.CloseGoingAway
)

// gorillaTransport adapts a gorilla/websocket client connection to the
// Transport interface. A dedicated goroutine turns the connection's pull
// API into the push notifications the EventHandler expects.
type gorillaTransport struct {
	conn    *websocket.Conn
	handler EventHandler

	// gorilla permits one concurrent writer; writeMu serializes Send and
	// the close frame
	writeMu sync.Mutex
}

// dialGorilla performs the WebSocket handshake. The read loop is not
// started here; run must be called once the handler is ready.
func dialGorilla(ctx context.Context, url string, o *options, handler EventHandler) (*gorillaTransport, error) {
	dialer := o.dialer
	if dialer == nil {
		dialer = &websocket.Dialer{
			HandshakeTimeout: defaultHandshakeTimeout,
		}
	}
	if len(o.subprotocols) > 0 {
		// Copy so the caller's dialer is not mutated
		d := *dialer
		d.Subprotocols = append([]string(nil), o.subprotocols...)
		dialer = &d
	}

	conn, resp, err := dialer.DialContext(ctx, url, o.header)
	if err != nil {
		if resp != nil {
			err = fmt.Errorf("%w: status %s: %v", errors.ErrHandshakeRejected, resp.Status, err)
		}
		return nil, errors.WrapTransport(err, "Conn", "Dial", "websocket handshake")
	}

	return &gorillaTransport{conn: conn, handler: handler}, nil
}

// run reports the connection open and starts the read loop. A successful
// WebSocket handshake means the channel is already usable, so the open
// notification fires synchronously before any frame can arrive.
func (t *gorillaTransport) run() {
	t.handler.HandleOpen()
	go t.readLoop()
}

// readLoop delivers inbound frames to the handler until the connection
// dies, then emits the terminal notifications.
func (t *gorillaTransport) readLoop() {
	for {
		kind, payload, err := t.conn.ReadMessage()
		if err != nil {
			t.terminate(err)
			return
		}
		t.handler.HandleMessage(FrameKind(kind), payload)
	}
}

// terminate maps a read failure onto the terminal notification sequence:
// a clean close frame becomes HandleClose with the peer's code and reason;
// anything else becomes HandleError followed by an abnormal-closure
// HandleClose. Either way, exactly one HandleClose ends the stream.
func (t *gorillaTransport) terminate(err error) {
	defer t.conn.Close()

	var closeErr *websocket.CloseError
	if stderrors.As(err, &closeErr) {
		t.handler.HandleClose(closeErr.Code, closeErr.Text)
		return
	}

	t.handler.HandleError(err)
	t.handler.HandleClose(websocket.CloseAbnormalClosure, err.Error())
}

// Send implements Transport
func (t *gorillaTransport) Send(kind FrameKind, payload []byte) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return t.conn.WriteMessage(int(kind), payload)
}

// Close implements Transport. It sends the close frame and bounds the wait
// for the peer's reply; the read loop surfaces the actual close
// notification when that reply (or the bounded timeout) arrives.
func (t *gorillaTransport) Close(code int, reason string) error {
	deadline := time.Now().Add(closeWriteTimeout)

	t.writeMu.Lock()
	err := t.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason), deadline)
	t.writeMu.Unlock()

	_ = t.conn.SetReadDeadline(time.Now().Add(closeReadGrace))
	return err
}

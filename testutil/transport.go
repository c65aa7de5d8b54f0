package testutil

import (
	"sync"

	"github.com/c360/wspull"
)

// SentFrame records one frame passed to FakeTransport.Send
type SentFrame struct {
	Kind    wspull.FrameKind
	Payload []byte
}

// CloseCall records one call to FakeTransport.Close
type CloseCall struct {
	Code   int
	Reason string
}

// FakeTransport is a scripted in-memory Transport for deterministic tests.
// The test drives the connection by calling Open, Deliver, Fail and
// CloseWith, which invoke the bound handler synchronously on the caller's
// goroutine; outbound traffic is recorded for assertions.
type FakeTransport struct {
	mu      sync.Mutex
	handler wspull.EventHandler
	sent    []SentFrame
	closes  []CloseCall
	sendErr error

	// NotifyOnClose controls whether Close synthesizes the transport's
	// close notification, mimicking a peer that acknowledges teardown
	// immediately. Enabled by default.
	NotifyOnClose bool
}

// NewFakeTransport creates an unbound fake transport
func NewFakeTransport() *FakeTransport {
	return &FakeTransport{NotifyOnClose: true}
}

// Bind installs the event handler, normally the *wspull.Conn under test
func (t *FakeTransport) Bind(handler wspull.EventHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = handler
}

// Open delivers the open notification
func (t *FakeTransport) Open() {
	t.currentHandler().HandleOpen()
}

// Deliver pushes one inbound frame to the handler
func (t *FakeTransport) Deliver(kind wspull.FrameKind, payload []byte) {
	t.currentHandler().HandleMessage(kind, payload)
}

// DeliverText pushes an inbound text frame
func (t *FakeTransport) DeliverText(payload string) {
	t.Deliver(wspull.FrameText, []byte(payload))
}

// Fail delivers an error notification
func (t *FakeTransport) Fail(err error) {
	t.currentHandler().HandleError(err)
}

// CloseWith delivers the close notification
func (t *FakeTransport) CloseWith(code int, reason string) {
	t.currentHandler().HandleClose(code, reason)
}

// Send implements wspull.Transport, recording the frame
func (t *FakeTransport) Send(kind wspull.FrameKind, payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sendErr != nil {
		return t.sendErr
	}
	t.sent = append(t.sent, SentFrame{Kind: kind, Payload: append([]byte(nil), payload...)})
	return nil
}

// Close implements wspull.Transport, recording the call and, when
// NotifyOnClose is set, echoing the close notification back to the handler
// the way a live teardown would.
func (t *FakeTransport) Close(code int, reason string) error {
	t.mu.Lock()
	t.closes = append(t.closes, CloseCall{Code: code, Reason: reason})
	notify := t.NotifyOnClose
	handler := t.handler
	t.mu.Unlock()

	if notify && handler != nil {
		handler.HandleClose(code, reason)
	}
	return nil
}

// SetSendError makes subsequent Send calls fail with err
func (t *FakeTransport) SetSendError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sendErr = err
}

// Sent returns a copy of the recorded outbound frames
func (t *FakeTransport) Sent() []SentFrame {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]SentFrame(nil), t.sent...)
}

// Closes returns a copy of the recorded close calls
func (t *FakeTransport) Closes() []CloseCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]CloseCall(nil), t.closes...)
}

func (t *FakeTransport) currentHandler() wspull.EventHandler {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handler == nil {
		panic("testutil: FakeTransport used before Bind")
	}
	return t.handler
}

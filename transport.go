package wspull

// FrameKind identifies the wire type of a frame. The values match the
// RFC 6455 data opcodes (and gorilla/websocket's message type constants),
// so a transport backed by a real WebSocket can pass them through unchanged.
type FrameKind int

const (
	// FrameText is a UTF-8 text frame
	FrameText FrameKind = 1
	// FrameBinary is a binary frame
	FrameBinary FrameKind = 2
)

// String returns the label used in logs and metrics for the frame kind
func (k FrameKind) String() string {
	switch k {
	case FrameText:
		return "text"
	case FrameBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Transport is the duplex channel a Conn operates over. Implementations
// must deliver inbound traffic to the EventHandler installed at
// construction time and must emit exactly one notification per lifecycle
// event: HandleOpen once when the channel becomes usable, HandleMessage
// per inbound frame, and HandleError/HandleClose on failure and teardown.
//
// The Conn owns its Transport exclusively; a Transport instance must not
// be shared between connections.
type Transport interface {
	// Send transmits one frame. Fire-and-forget from the Conn's point of
	// view: an error reports a local write failure, not delivery status.
	Send(kind FrameKind, payload []byte) error

	// Close initiates teardown with an RFC 6455 close code and reason.
	// Queue draining happens reactively when the transport's own close
	// notification reaches the handler, not inside this call.
	Close(code int, reason string) error
}

// EventHandler receives transport notifications. Conn implements it;
// custom transports and test fakes call it.
type EventHandler interface {
	// HandleOpen signals that the channel is established
	HandleOpen()

	// HandleMessage delivers one inbound frame
	HandleMessage(kind FrameKind, payload []byte)

	// HandleError reports a transport failure. Not terminal by itself;
	// a failed channel additionally signals HandleClose.
	HandleError(err error)

	// HandleClose reports channel teardown with the peer's close code
	// and reason. Terminal: no notifications may follow it.
	HandleClose(code int, reason string)
}

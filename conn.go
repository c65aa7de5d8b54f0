package wspull

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/c360/wspull/errors"
	"github.com/c360/wspull/pkg/deque"
	"github.com/c360/wspull/pkg/promise"
)

// State is the connection lifecycle state
type State int

const (
	// StateConnecting is the initial state, before the transport reports open
	StateConnecting State = iota
	// StateOpen means the transport is established and frames may flow
	StateOpen
	// StateClosed is terminal; no further notifications will arrive
	StateClosed
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Conn converts a push-style transport into a demand-driven read interface.
//
// Inbound frames and read requests are reconciled in strict FIFO order on
// both sides: a frame arriving while reads are pending resolves the oldest
// pending read; a frame arriving with no reader waiting is buffered; a read
// issued while frames are buffered consumes the oldest buffered frame; a
// read issued with nothing buffered joins the wait line. At most one of the
// two queues is non-empty at any instant.
//
// Both queues are unbounded. A producer that keeps sending while no one
// reads, or a consumer that keeps reading while nothing arrives, grows the
// corresponding queue without limit; bounding is the caller's concern.
//
// All methods are safe for concurrent use.
type Conn struct {
	id        string
	logger    *slog.Logger
	metrics   *connMetrics
	transport Transport

	mu       sync.Mutex
	state    State
	pending  *deque.Deque[*promise.Promise[frame]]
	buffered *deque.Deque[frame]
	started  *promise.Promise[struct{}]
}

// NewConn wraps an already-constructed Transport. The caller is responsible
// for installing the returned Conn as the transport's EventHandler before
// any notification fires. Most users want Dial instead.
func NewConn(t Transport, opts ...Option) *Conn {
	return newConn(t, applyOptions(opts...))
}

func newConn(t Transport, o *options) *Conn {
	c := &Conn{
		id:        uuid.NewString(),
		logger:    o.logger,
		transport: t,
		state:     StateConnecting,
		pending:   deque.New[*promise.Promise[frame]](),
		buffered:  deque.New[frame](),
		started:   promise.New[struct{}](),
	}
	c.metrics = newConnMetrics(o.registry, c.id)
	return c
}

// Dial connects to a WebSocket endpoint and waits for the connection to
// open. It is the standard entry point: construct, install handlers, start
// the transport, await open.
func Dial(ctx context.Context, url string, opts ...Option) (*Conn, error) {
	o := applyOptions(opts...)
	c := newConn(nil, o)

	t, err := dialGorilla(ctx, url, o, c)
	if err != nil {
		return nil, err
	}
	c.transport = t

	t.run()

	if err := c.WaitOpen(ctx); err != nil {
		_ = t.Close(closeCodeGoingAway, "open aborted")
		return nil, err
	}
	return c, nil
}

// ID returns the connection's unique identifier, used in logs and as the
// per-connection metrics label.
func (c *Conn) ID() string {
	return c.id
}

// State returns the current lifecycle state
func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PendingReads returns the number of reads waiting for a frame to arrive
func (c *Conn) PendingReads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending.Len()
}

// BufferedFrames returns the number of frames buffered ahead of any read
func (c *Conn) BufferedFrames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffered.Len()
}

// WaitOpen blocks until the transport reports open, the connection fails,
// or ctx is done. It resolves immediately when the connection is already
// open, regardless of call order relative to the open notification.
func (c *Conn) WaitOpen(ctx context.Context) error {
	_, err := c.started.Await(ctx)
	return err
}

// HandleOpen implements EventHandler
func (c *Conn) HandleOpen() {
	c.mu.Lock()
	if c.state == StateConnecting {
		c.state = StateOpen
	}
	c.mu.Unlock()

	c.started.Resolve(struct{}{})
	c.logger.Debug("connection open", "conn_id", c.id)
}

// HandleMessage implements EventHandler. If a read is pending, the frame
// resolves the oldest one; otherwise the frame is buffered. A frame is
// never delivered to more than one read.
func (c *Conn) HandleMessage(kind FrameKind, payload []byte) {
	f := frame{kind: kind, payload: payload}

	c.mu.Lock()
	if p, ok := c.pending.PopFront(); ok {
		// Settle under the lock so delivery order matches arrival order
		p.Resolve(f)
		c.metrics.queueDepths(c.pending.Len(), c.buffered.Len())
		c.mu.Unlock()
		c.metrics.frameReceived(kind)
		return
	}
	c.buffered.PushBack(f)
	c.metrics.queueDepths(c.pending.Len(), c.buffered.Len())
	c.mu.Unlock()

	c.metrics.frameReceived(kind)
}

// HandleError implements EventHandler. Every pending read is rejected with
// the transport failure. Buffered frames are untouched: an error does not
// retroactively invalidate data that already arrived. The state is not
// changed; a dead channel additionally signals HandleClose.
func (c *Conn) HandleError(err error) {
	werr := errors.WrapTransport(err, "Conn", "HandleError", "transport failure")

	c.mu.Lock()
	failed := c.drainPendingLocked(werr)
	c.mu.Unlock()

	c.metrics.errorOccurred("transport")
	c.logger.Warn("transport error",
		"conn_id", c.id,
		"pending_failed", failed,
		"error", err)
}

// HandleClose implements EventHandler. Identical drain semantics to
// HandleError, with the close reason as the failure payload, and a terminal
// transition to StateClosed.
func (c *Conn) HandleClose(code int, reason string) {
	cerr := errors.WrapClosed(
		fmt.Errorf("%w: code %d (%s)", errors.ErrConnectionClosed, code, reason),
		"Conn", "HandleClose", "connection teardown")

	c.mu.Lock()
	wasClosed := c.state == StateClosed
	c.state = StateClosed
	failed := c.drainPendingLocked(cerr)
	c.mu.Unlock()

	// Release a caller still waiting for open; no-op if open already fired
	c.started.Reject(cerr)

	if !wasClosed {
		c.logger.Debug("connection closed",
			"conn_id", c.id,
			"code", code,
			"reason", reason,
			"pending_failed", failed)
	}
}

// drainPendingLocked rejects every pending read with err and returns how
// many were rejected. Caller must hold c.mu.
func (c *Conn) drainPendingLocked(err error) int {
	failed := 0
	for {
		p, ok := c.pending.PopFront()
		if !ok {
			break
		}
		p.Reject(err)
		failed++
	}
	c.metrics.queueDepths(c.pending.Len(), c.buffered.Len())
	return failed
}

// readFrame is the primitive under every typed read: consume the oldest
// buffered frame if one exists, otherwise join the pending queue and wait.
// Symmetric with HandleMessage - whichever of {frame, read} arrives second
// is satisfied by whichever arrived first.
//
// On a closed connection with nothing buffered the read fails immediately;
// no terminal notification will ever arrive to settle it. A ctx failure
// abandons the wait but the queue slot remains until a frame or terminal
// event consumes it.
func (c *Conn) readFrame(ctx context.Context, op string) (frame, error) {
	c.mu.Lock()
	if f, ok := c.buffered.PopFront(); ok {
		c.metrics.queueDepths(c.pending.Len(), c.buffered.Len())
		c.mu.Unlock()
		return f, nil
	}
	if c.state == StateClosed {
		c.mu.Unlock()
		return frame{}, errors.WrapClosed(errors.ErrConnectionClosed, "Conn", op, "read after close")
	}
	p := promise.New[frame]()
	c.pending.PushBack(p)
	c.metrics.queueDepths(c.pending.Len(), c.buffered.Len())
	c.mu.Unlock()

	return p.Await(ctx)
}

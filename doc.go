// Package wspull converts a push-style, callback-driven WebSocket stream
// into a demand-driven, sequential read interface: a consumer asks for the
// next message and blocks until one arrives, instead of registering a
// callback that fires whenever the transport decides to deliver.
//
// # Architecture
//
// The core is a reconciliation engine that matches inbound frames against
// outstanding reads in strict arrival order on both sides:
//
//	┌──────────────┐  HandleMessage   ┌───────────────────────┐
//	│  Transport   │ ───────────────→ │     Conn (engine)     │
//	│ (read loop)  │  HandleError     │                       │
//	│              │  HandleClose     │  pending reads  FIFO  │
//	└──────────────┘                  │  buffered frames FIFO │
//	                                  └───────────┬───────────┘
//	                                              │ readFrame
//	                                  ┌───────────┴───────────┐
//	                                  │  ReadText / ReadJSON  │
//	                                  │  ReadValidated        │
//	                                  │  ReadMessage          │
//	                                  └───────────┬───────────┘
//	                                              │
//	                                  ┌───────────┴───────────┐
//	                                  │  Messages / JSONValues│
//	                                  │  Validated  iterators │
//	                                  └───────────────────────┘
//
// A frame arriving while reads are pending resolves the oldest read; a
// frame with no reader waiting is buffered; a read issued while frames are
// buffered consumes the oldest one; otherwise the read joins the wait
// line. At most one of the two queues is ever non-empty. On a transport
// error or close, every pending read fails exactly once; buffered frames
// remain readable.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	conn, err := wspull.Dial(ctx, "wss://example.com/feed")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close(websocket.CloseNormalClosure, "done")
//
//	if err := conn.WriteJSON(map[string]any{"subscribe": "ticks"}); err != nil {
//	    log.Fatal(err)
//	}
//
//	for msg, err := range conn.Messages(ctx) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(msg.Text)
//	}
//
// # Checked Reads
//
// ReadValidated pairs a read with a caller-supplied validator; the schema
// subpackage provides a JSON Schema implementation:
//
//	v := schema.MustNew([]byte(`{
//	    "type": "object",
//	    "properties": {"name": {"type": "string"}, "age": {"type": "number"}},
//	    "required": ["name", "age"]
//	}`))
//
//	person, err := conn.ReadValidated(ctx, v)
//
// # Error Handling
//
// Failures carry one of four classes, inspectable through the errors
// subpackage: transport (surfaced by the socket), closed (teardown),
// decode (payload could not be interpreted), validation (schema check
// failed). None are retried internally, and the library never reconnects.
//
// # Custom Transports
//
// Conn is polymorphic over the Transport interface. NewConn wraps any
// duplex channel that can deliver open/message/error/close notifications
// to an EventHandler; Dial wires up the gorilla/websocket implementation.
// The testutil subpackage provides a scripted in-memory transport.
//
// # Observability
//
// Lifecycle events are logged through log/slog. Per-connection Prometheus
// metrics (frames, queue depths, errors) are exported when a
// metric.MetricsRegistry is supplied via WithMetrics.
package wspull

package wspull

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/c360/wspull/metric"
)

// Option configures a connection using the functional options pattern
type Option func(*options)

// options holds internal configuration for connections
type options struct {
	logger       *slog.Logger
	registry     *metric.MetricsRegistry
	dialer       *websocket.Dialer
	header       http.Header
	subprotocols []string
}

// WithLogger sets the structured logger used for lifecycle events.
// Defaults to slog.Default if not specified.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics enables Prometheus metrics export for the connection.
// If registry is nil, this option is ignored.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithDialer replaces the default WebSocket dialer, giving callers control
// over TLS configuration, proxies, and handshake timeouts.
func WithDialer(dialer *websocket.Dialer) Option {
	return func(o *options) {
		o.dialer = dialer
	}
}

// WithRequestHeader sets HTTP headers sent with the handshake request,
// typically for authentication.
func WithRequestHeader(header http.Header) Option {
	return func(o *options) {
		o.header = header
	}
}

// WithSubprotocols requests the given subprotocols during the handshake
func WithSubprotocols(subprotocols ...string) Option {
	return func(o *options) {
		o.subprotocols = subprotocols
	}
}

// applyOptions applies functional options to create final configuration
func applyOptions(opts ...Option) *options {
	o := &options{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

package wspull

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/wspull/metric"
)

// connMetrics holds Prometheus metrics for one connection. All methods are
// nil-safe: a connection created without WithMetrics carries a nil
// *connMetrics and the recording calls become no-ops.
type connMetrics struct {
	framesReceived *prometheus.CounterVec
	framesSent     *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	pendingReads   prometheus.Gauge
	bufferedFrames prometheus.Gauge
}

// newConnMetrics creates and registers per-connection metrics. Instruments
// carry the connection ID as a constant label so several connections can
// coexist in one registry.
func newConnMetrics(registry *metric.MetricsRegistry, connID string) *connMetrics {
	if registry == nil {
		return nil
	}

	constLabels := prometheus.Labels{"conn": connID}

	metrics := &connMetrics{
		framesReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "wspull",
			Subsystem:   "conn",
			Name:        "frames_received_total",
			Help:        "Total frames received from the transport",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		framesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "wspull",
			Subsystem:   "conn",
			Name:        "frames_sent_total",
			Help:        "Total frames sent to the transport",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "wspull",
			Subsystem:   "conn",
			Name:        "errors_total",
			Help:        "Total errors by type",
			ConstLabels: constLabels,
		}, []string{"type"}),

		pendingReads: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "wspull",
			Subsystem:   "conn",
			Name:        "pending_reads",
			Help:        "Reads waiting for a frame to arrive",
			ConstLabels: constLabels,
		}),

		bufferedFrames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "wspull",
			Subsystem:   "conn",
			Name:        "buffered_frames",
			Help:        "Frames buffered ahead of any read",
			ConstLabels: constLabels,
		}),
	}

	registry.RegisterCounterVec(connID, "frames_received", metrics.framesReceived)
	registry.RegisterCounterVec(connID, "frames_sent", metrics.framesSent)
	registry.RegisterCounterVec(connID, "errors", metrics.errorsTotal)
	registry.RegisterGauge(connID, "pending_reads", metrics.pendingReads)
	registry.RegisterGauge(connID, "buffered_frames", metrics.bufferedFrames)

	return metrics
}

func (m *connMetrics) frameReceived(kind FrameKind) {
	if m == nil {
		return
	}
	m.framesReceived.WithLabelValues(kind.String()).Inc()
}

func (m *connMetrics) frameSent(kind FrameKind) {
	if m == nil {
		return
	}
	m.framesSent.WithLabelValues(kind.String()).Inc()
}

func (m *connMetrics) errorOccurred(errType string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(errType).Inc()
}

func (m *connMetrics) queueDepths(pending, buffered int) {
	if m == nil {
		return
	}
	m.pendingReads.Set(float64(pending))
	m.bufferedFrames.Set(float64(buffered))
}

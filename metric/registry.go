package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/c360/wspull/errors"
)

// MetricsRegistrar defines the interface for registering connection metrics
type MetricsRegistrar interface {
	RegisterCounter(connName, metricName string, counter prometheus.Counter) error
	RegisterGauge(connName, metricName string, gauge prometheus.Gauge) error
	RegisterCounterVec(connName, metricName string, counterVec *prometheus.CounterVec) error
	RegisterGaugeVec(connName, metricName string, gaugeVec *prometheus.GaugeVec) error
	Unregister(connName, metricName string) bool
}

// MetricsRegistry manages the registration and lifecycle of metrics
type MetricsRegistry struct {
	prometheusRegistry *prometheus.Registry
	registeredMetrics  map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewMetricsRegistry creates a new metrics registry with Go runtime collectors
func NewMetricsRegistry() *MetricsRegistry {
	prometheusRegistry := prometheus.NewRegistry()

	registry := &MetricsRegistry{
		prometheusRegistry: prometheusRegistry,
		registeredMetrics:  make(map[string]prometheus.Collector),
	}

	registry.prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// PrometheusRegistry returns the underlying Prometheus registry
func (r *MetricsRegistry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// RegisterCounter registers a counter metric for a connection
func (r *MetricsRegistry) RegisterCounter(connName, metricName string, counter prometheus.Counter) error {
	return r.register(connName, metricName, "RegisterCounter", counter)
}

// RegisterGauge registers a gauge metric for a connection
func (r *MetricsRegistry) RegisterGauge(connName, metricName string, gauge prometheus.Gauge) error {
	return r.register(connName, metricName, "RegisterGauge", gauge)
}

// RegisterCounterVec registers a counter vector metric for a connection
func (r *MetricsRegistry) RegisterCounterVec(connName, metricName string, counterVec *prometheus.CounterVec) error {
	return r.register(connName, metricName, "RegisterCounterVec", counterVec)
}

// RegisterGaugeVec registers a gauge vector metric for a connection
func (r *MetricsRegistry) RegisterGaugeVec(connName, metricName string, gaugeVec *prometheus.GaugeVec) error {
	return r.register(connName, metricName, "RegisterGaugeVec", gaugeVec)
}

// register adds a collector under "connName.metricName", rejecting duplicates
// both at the registry key level and at the Prometheus level.
func (r *MetricsRegistry) register(connName, metricName, operation string, collector prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", connName, metricName)

	if _, exists := r.registeredMetrics[key]; exists {
		return errors.Wrap(
			fmt.Errorf("metric %s already registered for connection %s", metricName, connName),
			"MetricsRegistry", operation, "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.Wrap(err, "MetricsRegistry", operation,
				fmt.Sprintf("prometheus conflict for metric %s", metricName))
		}
		return errors.Wrap(err, "MetricsRegistry", operation,
			"register collector with prometheus")
	}

	r.registeredMetrics[key] = collector
	return nil
}

// Unregister removes a metric from the registry
func (r *MetricsRegistry) Unregister(connName, metricName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", connName, metricName)

	collector, exists := r.registeredMetrics[key]
	if !exists {
		return false
	}

	success := r.prometheusRegistry.Unregister(collector)
	if success {
		delete(r.registeredMetrics, key)
	}

	return success
}

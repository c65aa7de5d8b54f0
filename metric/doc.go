// Package metric provides Prometheus metrics registration for wspull
// connections.
//
// The registry tracks collectors by "connection.metric" key so a process
// holding several connections can register per-connection instruments
// without name collisions, and unregister them when a connection is torn
// down. Go runtime and process collectors are registered at construction.
//
// Usage:
//
//	registry := metric.NewMetricsRegistry()
//
//	conn, err := wspull.Dial(ctx, url, wspull.WithMetrics(registry))
//
//	http.Handle("/metrics", registry.Handler())
package metric

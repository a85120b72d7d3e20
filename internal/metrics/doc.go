// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry at init through
// promauto. Record* helpers keep label values consistent between callers.
package metrics

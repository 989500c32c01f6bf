// Package metrics provides Prometheus metrics for Mercator Callisto.
//
// The collector tracks trace sampling decisions (by reason and outcome),
// span lifecycle counts, and proxied request totals with latency
// histograms. Metrics are registered on a dedicated registry and exposed
// through Handler, typically mounted at /metrics.
package metrics

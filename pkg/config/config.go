package config

import "time"

// Config is the root configuration structure for Mercator Callisto.
// It contains all configuration sections for the proxy server, node
// identity, and telemetry settings.
type Config struct {
	// Proxy contains HTTP proxy server configuration including listen
	// address, upstream target, and timeouts.
	Proxy ProxyConfig `yaml:"proxy"`

	// Node identifies this proxy instance in emitted spans.
	Node NodeConfig `yaml:"node"`

	// Telemetry contains configuration for observability including logging,
	// metrics, and request tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ProxyConfig contains configuration for the HTTP proxy server.
type ProxyConfig struct {
	// ListenAddress is the address and port for the proxy to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080", "0.0.0.0:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// UpstreamURL is the base URL requests are forwarded to.
	// Required when running the server.
	UpstreamURL string `yaml:"upstream_url"`

	// UpstreamCluster is the logical name of the upstream cluster,
	// recorded on spans for traced requests.
	// Default: "upstream"
	UpstreamCluster string `yaml:"upstream_cluster"`

	// HealthCheckPath marks requests to this path as health checks.
	// Health checks are never traced.
	// Default: "/healthz"
	HealthCheckPath string `yaml:"health_check_path"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means no timeout.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. A zero or negative value means no timeout.
	// Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request on a
	// kept-alive connection.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum time to wait for in-flight requests
	// to complete during graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// UpstreamTimeout bounds a single upstream round trip.
	// Default: 60s
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`
}

// NodeConfig identifies the proxy instance. The node id and zone are
// stamped on every span this instance starts.
type NodeConfig struct {
	// ID is the unique name of this proxy instance (e.g., a hostname).
	// Default: os.Hostname()
	ID string `yaml:"id"`

	// Zone is the availability zone or failure domain of this instance.
	// Default: ""
	Zone string `yaml:"zone"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains request tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the Prometheus metric namespace.
	// Default: "mercator"
	Namespace string `yaml:"namespace"`

	// Subsystem is the Prometheus metric subsystem.
	// Default: "callisto"
	Subsystem string `yaml:"subsystem"`
}

// TracingConfig contains request tracing configuration. It is consumed on
// every request, both by the sampling decision and by span finalization.
type TracingConfig struct {
	// Enabled controls whether request tracing is active. When disabled,
	// no spans are started regardless of the sampling decision.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// OperationName selects the span naming for this listener.
	// Options: "ingress", "egress"
	// Default: "ingress"
	OperationName string `yaml:"operation_name"`

	// Verbose adds timestamped byte-transfer milestone logs to each span.
	// Default: false
	Verbose bool `yaml:"verbose"`

	// RequestHeadersForTags lists request headers mirrored onto spans as
	// tags, keyed by the lowercase header name. Headers absent from a
	// request are skipped.
	RequestHeadersForTags []string `yaml:"request_headers_for_tags"`

	// Exporter determines the span exporter to use.
	// Options: "otlp"
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the exporter endpoint (host:port for OTLP gRPC).
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName identifies this service in exported traces.
	// Default: "mercator-callisto"
	ServiceName string `yaml:"service_name"`

	// OTLP contains OTLP exporter settings.
	OTLP OTLPConfig `yaml:"otlp"`
}

// OTLPConfig contains OTLP gRPC exporter settings.
type OTLPConfig struct {
	// Insecure disables transport security for the exporter connection.
	// Default: true
	Insecure bool `yaml:"insecure"`

	// Timeout bounds each export batch.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}

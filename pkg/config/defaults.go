package config

import (
	"os"
	"time"
)

// Default values for configuration fields.
const (
	// Proxy defaults
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultUpstreamCluster = "upstream"
	DefaultHealthCheckPath = "/healthz"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultUpstreamTimeout = 60 * time.Second

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	// Metrics defaults
	DefaultMetricsNamespace = "mercator"
	DefaultMetricsSubsystem = "callisto"

	// Tracing defaults
	DefaultOperationName      = "ingress"
	DefaultTracingExporter    = "otlp"
	DefaultTracingEndpoint    = "localhost:4317"
	DefaultTracingServiceName = "mercator-callisto"
	DefaultOTLPTimeout        = 10 * time.Second
)

// ApplyDefaults fills in default values for any unset configuration fields.
// It modifies the configuration in place.
func ApplyDefaults(cfg *Config) {
	if cfg.Proxy.ListenAddress == "" {
		cfg.Proxy.ListenAddress = DefaultListenAddress
	}
	if cfg.Proxy.UpstreamCluster == "" {
		cfg.Proxy.UpstreamCluster = DefaultUpstreamCluster
	}
	if cfg.Proxy.HealthCheckPath == "" {
		cfg.Proxy.HealthCheckPath = DefaultHealthCheckPath
	}
	if cfg.Proxy.ReadTimeout == 0 {
		cfg.Proxy.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Proxy.WriteTimeout == 0 {
		cfg.Proxy.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Proxy.IdleTimeout == 0 {
		cfg.Proxy.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Proxy.ShutdownTimeout == 0 {
		cfg.Proxy.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Proxy.UpstreamTimeout == 0 {
		cfg.Proxy.UpstreamTimeout = DefaultUpstreamTimeout
	}

	if cfg.Node.ID == "" {
		if hostname, err := os.Hostname(); err == nil {
			cfg.Node.ID = hostname
		}
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}

	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}

	if cfg.Telemetry.Tracing.OperationName == "" {
		cfg.Telemetry.Tracing.OperationName = DefaultOperationName
	}
	if cfg.Telemetry.Tracing.Exporter == "" {
		cfg.Telemetry.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Telemetry.Tracing.Endpoint == "" {
		cfg.Telemetry.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = DefaultTracingServiceName
	}
	if cfg.Telemetry.Tracing.OTLP.Timeout == 0 {
		cfg.Telemetry.Tracing.OTLP.Timeout = DefaultOTLPTimeout
	}
}

// DefaultConfig returns a configuration populated with all default values.
func DefaultConfig() *Config {
	cfg := &Config{
		Telemetry: TelemetryConfig{
			Metrics: MetricsConfig{Enabled: true},
			Tracing: TracingConfig{
				OTLP: OTLPConfig{Insecure: true},
			},
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

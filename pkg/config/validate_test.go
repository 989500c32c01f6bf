package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return DefaultConfig()
}

// TestValidate tests individual field rules
func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:      "empty listen address",
			mutate:    func(c *Config) { c.Proxy.ListenAddress = "" },
			wantField: "proxy.listen_address",
		},
		{
			name:      "relative upstream url",
			mutate:    func(c *Config) { c.Proxy.UpstreamURL = "backend:8080/path" },
			wantField: "proxy.upstream_url",
		},
		{
			name:      "health check path without slash",
			mutate:    func(c *Config) { c.Proxy.HealthCheckPath = "healthz" },
			wantField: "proxy.health_check_path",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Telemetry.Logging.Level = "loud" },
			wantField: "telemetry.logging.level",
		},
		{
			name:      "bad log format",
			mutate:    func(c *Config) { c.Telemetry.Logging.Format = "xml" },
			wantField: "telemetry.logging.format",
		},
		{
			name:      "bad operation name",
			mutate:    func(c *Config) { c.Telemetry.Tracing.OperationName = "sideways" },
			wantField: "telemetry.tracing.operation_name",
		},
		{
			name: "bad exporter when enabled",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.Exporter = "carrier-pigeon"
			},
			wantField: "telemetry.tracing.exporter",
		},
		{
			name: "empty endpoint when enabled",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.Endpoint = ""
			},
			wantField: "telemetry.tracing.endpoint",
		},
		{
			name: "empty header name in tag list",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.RequestHeadersForTags = []string{"x-tenant-id", ""}
			},
			wantField: "telemetry.tracing.request_headers_for_tags[1]",
		},
		{
			name: "disabled tracing skips exporter checks",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.Enabled = false
				c.Telemetry.Tracing.Endpoint = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Validate() = %q, want to mention %q", err.Error(), tt.wantField)
			}
		})
	}
}

// TestValidationErrorAggregation tests multiple errors are reported together
func TestValidationErrorAggregation(t *testing.T) {
	cfg := validConfig()
	cfg.Proxy.ListenAddress = ""
	cfg.Telemetry.Logging.Level = "loud"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}

	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("Validate() returned %T, want ValidationError", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(verr.Errors), verr)
	}
}

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g., "proxy.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateProxy(&cfg.Proxy)...)
	errs = append(errs, validateLogging(&cfg.Telemetry.Logging)...)
	errs = append(errs, validateTracing(&cfg.Telemetry.Tracing)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateProxy(cfg *ProxyConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "proxy.listen_address",
			Message: "must not be empty",
		})
	}

	if cfg.UpstreamURL != "" {
		u, err := url.Parse(cfg.UpstreamURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, FieldError{
				Field:   "proxy.upstream_url",
				Message: fmt.Sprintf("must be an absolute URL, got %q", cfg.UpstreamURL),
			})
		}
	}

	if cfg.HealthCheckPath != "" && !strings.HasPrefix(cfg.HealthCheckPath, "/") {
		errs = append(errs, FieldError{
			Field:   "proxy.health_check_path",
			Message: "must start with /",
		})
	}

	return errs
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", cfg.Level),
		})
	}

	switch cfg.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("must be one of json, text; got %q", cfg.Format),
		})
	}

	return errs
}

func validateTracing(cfg *TracingConfig) []FieldError {
	var errs []FieldError

	switch cfg.OperationName {
	case "ingress", "egress":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.operation_name",
			Message: fmt.Sprintf("must be one of ingress, egress; got %q", cfg.OperationName),
		})
	}

	if cfg.Enabled {
		if cfg.Exporter != "otlp" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.exporter",
				Message: fmt.Sprintf("must be otlp; got %q", cfg.Exporter),
			})
		}
		if cfg.Endpoint == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.endpoint",
				Message: "must not be empty when tracing is enabled",
			})
		}
	}

	for i, name := range cfg.RequestHeadersForTags {
		if name == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("telemetry.tracing.request_headers_for_tags[%d]", i),
				Message: "header name must not be empty",
			})
		}
	}

	return errs
}

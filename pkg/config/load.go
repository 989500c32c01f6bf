package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML configuration bytes, applies defaults, and
// validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	ApplyDefaults(&cfg)
	normalize(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize canonicalizes fields whose comparisons are case-insensitive.
func normalize(cfg *Config) {
	cfg.Telemetry.Tracing.OperationName = strings.ToLower(cfg.Telemetry.Tracing.OperationName)
	for i, name := range cfg.Telemetry.Tracing.RequestHeadersForTags {
		cfg.Telemetry.Tracing.RequestHeadersForTags[i] = strings.ToLower(name)
	}
}

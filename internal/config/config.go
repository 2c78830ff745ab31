// Package config loads service configuration from defaults, an optional
// .env file, an optional YAML file and environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config contains process configuration.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `koanf:"port"`

	// TestMode builds the application but never opens the network listener.
	TestMode bool `koanf:"test_mode"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// ServiceName is reported on traces, metrics and exported logs.
	ServiceName string `koanf:"service_name"`

	// TelemetryEnabled turns on the OTLP trace, metric and log exporters.
	TelemetryEnabled bool `koanf:"telemetry_enabled"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Port:               3000,
		LogLevel:           "info",
		ServiceName:        "convert-api",
		ShutdownTimeout:    5 * time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	case strings.TrimSpace(c.ServiceName) == "":
		return fmt.Errorf("%w: service_name must not be empty", ErrInvalidConfig)
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	case len(c.CORSAllowedOrigins) == 0:
		return fmt.Errorf("%w: cors_allowed_origins must not be empty", ErrInvalidConfig)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}

	return nil
}

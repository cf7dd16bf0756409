// Package config loads ambient configuration for the calculator's CLI and
// server wrappers. The calculation core itself has no configuration surface;
// everything here is presentation plumbing (listen address, logging,
// default location).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/digital-footprint/internal/catalog"
)

// Environment variable overrides.
const (
	// EnvListenAddr overrides the server listen address.
	EnvListenAddr = "FOOTPRINT_LISTEN_ADDR"

	// EnvLogLevel overrides the log level.
	EnvLogLevel = "FOOTPRINT_LOG_LEVEL"

	// EnvLogFormat overrides the log format (console or json).
	EnvLogFormat = "FOOTPRINT_LOG_FORMAT"

	// EnvDefaultLocation overrides the default grid location id.
	EnvDefaultLocation = "FOOTPRINT_DEFAULT_LOCATION"
)

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is the zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// UnmarshalYAML accepts shutdown_timeout as a Go duration string ("10s"),
// which yaml.v3 does not decode into time.Duration on its own. Fields left
// out of the YAML keep their prior (default) values.
func (s *ServerConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		ListenAddr      string `yaml:"listen_addr"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.ListenAddr != "" {
		s.ListenAddr = raw.ListenAddr
	}
	if raw.ShutdownTimeout != "" {
		parsed, err := time.ParseDuration(raw.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("server.shutdown_timeout: %w", err)
		}
		s.ShutdownTimeout = parsed
	}
	return nil
}

// Config is the root configuration for the CLI and server wrappers.
type Config struct {
	// DefaultLocation is the grid location id used when none is supplied.
	DefaultLocation string `yaml:"default_location"`

	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultLocation: "uk",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (if path is non-empty), then environment overrides. The result is
// validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays FOOTPRINT_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvDefaultLocation); v != "" {
		cfg.DefaultLocation = v
	}
}

// Validate checks that the configuration references a known grid location
// and uses a recognized log format.
func (c Config) Validate() error {
	if _, err := catalog.GridByID(c.DefaultLocation); err != nil {
		return fmt.Errorf("default_location: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr must not be empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

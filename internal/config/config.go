package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the alarm-simulator binary.
type Config struct {
	// LogLevel is the minimum log level (debug, info, warn, error, fatal).
	LogLevel string `yaml:"log_level"`
	// MetricsAddress is the listen address for the Prometheus endpoint.
	// Empty disables the endpoint.
	MetricsAddress string `yaml:"metrics_addr"`
	// Sources is the number of synthetic alarm sources to simulate.
	Sources int `yaml:"sources"`
	// Tick is the interval between source value flips.
	Tick time.Duration `yaml:"tick"`
	// Classes are the alarm class names assigned round-robin to sources.
	Classes []string `yaml:"classes"`
}

const (
	// DefaultConfigFilename is the default filename for simulator settings.
	DefaultConfigFilename = "alarm-simulator-settings.yaml"

	// DefaultSources is the default number of synthetic sources.
	DefaultSources = 8

	// DefaultTick is the default interval between source value flips.
	DefaultTick = time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNoClasses is returned when the class list is empty.
	errNoClasses = errors.New("at least one alarm class must be configured")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if len(cfg.Classes) == 0 {
		return errNoClasses
	}

	if cfg.Sources <= 0 {
		cfg.Sources = DefaultSources
	}

	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}

	if cfg.MetricsAddress == "" {
		return nil
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.MetricsAddress); err != nil {
		return fmt.Errorf("invalid metrics address: %w", err)
	}

	return nil
}

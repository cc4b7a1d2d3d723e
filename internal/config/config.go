// Package config handles loading and saving user configuration for brandwatch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/brandwatch/internal/brand"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Source kinds.
const (
	SourceDemo = "demo"
	SourceHTTP = "http"
)

// Config holds all user configuration for brandwatch.
type Config struct {
	Delay    time.Duration `yaml:"delay"`              // Artificial delay before a search resolves
	Source   string        `yaml:"source"`             // demo or http
	Endpoint string        `yaml:"endpoint,omitempty"` // Backend base URL for the http source
	Listen   string        `yaml:"listen"`             // Address for `brandwatch serve`
	Demo     brand.Result  `yaml:"demo"`               // Record served by the demo source
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Delay:  500 * time.Millisecond,
		Source: SourceDemo,
		Listen: ":8080",
		Demo:   brand.Demo(),
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative: %s", c.Delay)
	}
	switch c.Source {
	case SourceDemo:
	case SourceHTTP:
		if c.Endpoint == "" {
			return fmt.Errorf("source %q requires an endpoint", c.Source)
		}
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}
	return nil
}

// Load reads configuration from a YAML file. Fields missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// LoadDir loads the config file from a directory.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "brandwatch"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values applied when the config file is absent or partial.
const (
	DefaultRefreshInterval = 60
	DefaultTimeFormat      = "12h"
	DefaultLogLevel        = "info"
)

// Config represents the application configuration.
type Config struct {
	// RefreshInterval is the score refresh cadence in seconds.
	RefreshInterval int `yaml:"refresh_interval"`

	// TimeFormat is "12h" or "24h" for game start times.
	TimeFormat string `yaml:"time_format,omitempty"`

	// WesternFirst lists Western Conference standings before Eastern.
	WesternFirst bool `yaml:"western_teams_first"`

	// NotifyOnFinal sends a desktop notification when a game goes final.
	NotifyOnFinal bool `yaml:"notify_on_final"`

	LogLevel string `yaml:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`

	Display DisplayConfig `yaml:"display"`
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	// UseUnicode enables box-drawing glyphs and the big-digit score font.
	// The ASCII fallback is used when false.
	UseUnicode bool `yaml:"use_unicode"`

	// Theme names a built-in color theme ("default", "gruvbox", "nord").
	Theme string `yaml:"theme,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		RefreshInterval: DefaultRefreshInterval,
		TimeFormat:      DefaultTimeFormat,
		LogLevel:        DefaultLogLevel,
		Display: DisplayConfig{
			UseUnicode: true,
			Theme:      "default",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "nhl-tui")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize clamps out-of-range values back to usable defaults.
func (c *Config) normalize() {
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = DefaultRefreshInterval
	}
	if c.TimeFormat != "12h" && c.TimeFormat != "24h" {
		c.TimeFormat = DefaultTimeFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

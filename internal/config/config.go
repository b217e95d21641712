// Package config loads and resolves the application's settings.
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Focus        FocusConfig
		Notification NotificationConfig
		Display      DisplayConfig
		Backend      BackendConfig
		System       SystemConfig
	}

	// FocusConfig holds focus-session settings
	FocusConfig struct {
		Duration    time.Duration
		DefaultGoal string
		Sound       string
		SessionCmd  string
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool
	}

	// BackendConfig holds backend API settings
	BackendConfig struct {
		BaseURL string
	}

	// SystemConfig holds system-related settings
	SystemConfig struct {
		ConfigPath string
		DBPath     string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

const AppName = "haru"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	return cfg, nil
}

// Load resolves the full configuration: paths, the first-run prompt, and the
// config file.
func Load() (*Config, error) {
	cfg, err := New(
		WithPromptConfig(ConfigFilePath()),
		WithViperConfig(ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	cfg.System.ConfigPath = ConfigFilePath()
	cfg.System.DBPath = DBFilePath()

	return cfg, nil
}

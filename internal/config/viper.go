package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyFocusDuration        = "focus.duration"
	keyFocusDefaultGoal     = "focus.default_goal"
	keyFocusSound           = "focus.sound"
	keyFocusSessionCmd      = "focus.session_cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyBackendBaseURL       = "backend.base_url"
)

const defaultBaseURL = "https://api.haruapp.dev"

// WithViperConfig returns an Option that loads the config file at
// configPath, creating it with defaults if it does not exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper, c *Config) {
	duration := "25m"
	if c.Focus.Duration != 0 {
		duration = c.Focus.Duration.String()
	}

	v.SetDefault(keyFocusDuration, duration)
	v.SetDefault(keyFocusDefaultGoal, "")
	v.SetDefault(keyFocusSound, "")
	v.SetDefault(keyFocusSessionCmd, "")
	v.SetDefault(keyNotificationsEnabled, c.Notification.Enabled)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyBackendBaseURL, defaultBaseURL)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	dur, err := parseDuration(v.GetString(keyFocusDuration))
	if err != nil {
		return err
	}

	c.Focus.Duration = dur
	c.Focus.DefaultGoal = v.GetString(keyFocusDefaultGoal)
	c.Focus.Sound = v.GetString(keyFocusSound)
	c.Focus.SessionCmd = v.GetString(keyFocusSessionCmd)
	c.Notification.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Backend.BaseURL = v.GetString(keyBackendBaseURL)

	return nil
}

// parseDuration accepts duration strings with or without a unit; a bare
// number is treated as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}

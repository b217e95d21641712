package config

import (
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	// replace haru directory to avoid overriding real configuration
	configDir = "haru_test"

	InitializePaths()

	pterm.DisableOutput()

	code := m.Run()

	// Cleanup test directory
	err := os.RemoveAll(filepath.Dir(configFilePath))
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(code)
}

func TestViperConfigCreatesDefaults(t *testing.T) {
	cfg, err := New(WithViperConfig(ConfigFilePath()))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Focus.Duration != 25*time.Minute {
		t.Errorf("expected default duration 25m, got %s", cfg.Focus.Duration)
	}

	if !cfg.Display.DarkTheme {
		t.Error("expected dark theme enabled by default")
	}

	if cfg.Backend.BaseURL != defaultBaseURL {
		t.Errorf("unexpected base URL: %s", cfg.Backend.BaseURL)
	}

	if _, err := os.Stat(ConfigFilePath()); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input    string
		expected time.Duration
	}{
		{"25m", 25 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"45", 45 * time.Minute},
	}

	for _, tc := range cases {
		got, err := parseDuration(tc.input)
		if err != nil {
			t.Fatalf("parseDuration(%q): unexpected error: %v", tc.input, err)
		}

		if got != tc.expected {
			t.Errorf(
				"parseDuration(%q): expected %s, got %s",
				tc.input,
				tc.expected,
				got,
			)
		}
	}

	if _, err := parseDuration("not-a-duration"); err == nil {
		t.Error("expected an error for invalid input")
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-10-09")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got.Year() != 2025 || got.Month() != time.October || got.Day() != 9 {
		t.Errorf("unexpected parsed date: %v", got)
	}

	if _, err := ParseDate("definitely not a date"); err == nil {
		t.Error("expected an error for unparseable input")
	}
}

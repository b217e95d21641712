package main

import (
	"strings"
	"testing"
)

func TestConstName(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"accent", "ColorAccent"},
		{"accent-dark", "ColorAccentDark"},
		{"neutral_dark", "ColorNeutralDark"},
		{"brand/primary", "ColorBrandPrimary"},
	}

	for _, tc := range cases {
		if got := constName(tc.input); got != tc.expected {
			t.Errorf("constName(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestGenerate(t *testing.T) {
	p := &palette{
		Colors: map[string]string{
			"accent":  "#16A34A",
			"primary": "#2563eb",
		},
	}

	src, err := generate(p, "ui")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := string(src)

	if !strings.Contains(out, "package ui") {
		t.Error("expected generated package clause")
	}

	if !strings.Contains(out, `ColorAccent  = "#16a34a"`) &&
		!strings.Contains(out, `ColorAccent = "#16a34a"`) {
		t.Errorf("expected lowercased accent constant, got:\n%s", out)
	}

	// constants must be sorted by name
	if strings.Index(out, "ColorAccent") > strings.Index(out, "ColorPrimary") {
		t.Error("expected constants in sorted order")
	}
}

func TestGenerateRejectsNonHexValues(t *testing.T) {
	p := &palette{
		Colors: map[string]string{"accent": "rgb(1,2,3)"},
	}

	if _, err := generate(p, "ui"); err == nil {
		t.Fatal("expected an error for non-hex value")
	}
}

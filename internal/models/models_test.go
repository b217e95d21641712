package models

import (
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		input    string
		expected Category
		wantErr  bool
	}{
		{"study", CategoryStudy, false},
		{" Work ", CategoryWork, false},
		{"", CategoryNone, false},
		{"studdy", CategoryNone, true},
	}

	for _, tc := range cases {
		got, err := ParseCategory(tc.input)

		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q): expected an error", tc.input)
			}

			continue
		}

		if err != nil {
			t.Fatalf("ParseCategory(%q): unexpected error: %v", tc.input, err)
		}

		if got != tc.expected {
			t.Errorf("ParseCategory(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestNewFocusRecordDerivesIDAndDate(t *testing.T) {
	createdAt := time.Date(2025, time.October, 9, 14, 30, 0, 0, time.UTC)

	rec := NewFocusRecord(createdAt, "study", 1500, FocusTimer)

	if rec.Date != "2025-10-09" {
		t.Errorf("unexpected date: %q", rec.Date)
	}

	if rec.ID == "" {
		t.Error("expected a derived id")
	}

	if rec.FocusedTime != 1500 {
		t.Errorf("unexpected focused time: %d", rec.FocusedTime)
	}
}

func TestNewFocusRecordClampsNegativeTime(t *testing.T) {
	rec := NewFocusRecord(time.Now(), "study", -5, FocusManual)

	if rec.FocusedTime != 0 {
		t.Errorf("expected clamped focused time, got %d", rec.FocusedTime)
	}
}

func TestTaskPatchAppliesOnlySetFields(t *testing.T) {
	task := NewTaskRecord("buy milk", "#ffffff", CategoryLife)

	completed := true

	TaskPatch{Completed: &completed}.Apply(&task)

	if !task.Completed {
		t.Error("expected completed to be set")
	}

	if task.Text != "buy milk" {
		t.Errorf("expected text untouched, got %q", task.Text)
	}
}

// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers parseTime, truncate, padRight, batteryBar, and levelOfReading.
package main

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/longevity/internal/models"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2026-01-31 08:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2026-01-31T08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2026-01-31",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2026-01-31T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "RFC3339 with offset",
			input:   "2026-01-31T08:30:00+05:00",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "31-01-2026",
			wantErr: true,
		},
		{
			name:    "invalid random string",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseTimeValues(t *testing.T) {
	result, err := parseTime("2026-06-15")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}

	if result.Year() != 2026 || result.Month() != time.June || result.Day() != 15 {
		t.Errorf("parseTime returned wrong date: got %v", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string no truncation",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "needs truncation",
			input:  "a very long note about sleep quality",
			maxLen: 20,
			want:   "a very long note ...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight = %q, want %q", got, "abc   ")
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight must not truncate: got %q", got)
	}
}

func TestKindList(t *testing.T) {
	list := kindList()
	for _, kind := range models.AllMetricKinds {
		if !strings.Contains(list, string(kind)) {
			t.Errorf("kindList missing %s", kind)
		}
	}
}

func TestBatteryBar(t *testing.T) {
	full := batteryBar(1.0)
	if !strings.Contains(full, strings.Repeat("█", 20)) {
		t.Errorf("full battery should have 20 filled cells: %q", full)
	}

	empty := batteryBar(0.0)
	if !strings.Contains(empty, strings.Repeat("░", 20)) {
		t.Errorf("empty battery should have 20 empty cells: %q", empty)
	}

	half := batteryBar(0.5)
	if !strings.Contains(half, strings.Repeat("█", 10)+strings.Repeat("░", 10)) {
		t.Errorf("half battery should be half filled: %q", half)
	}
}

func TestLevelOfReading(t *testing.T) {
	// Categorical answers classify via their original label.
	labeled := models.NewReading(models.KindSmoking, 6).WithRawLabel("Quit over a year ago")
	if got := levelOfReading(labeled); got != models.LevelModerate {
		t.Errorf("labeled reading = %s, want moderate", got)
	}

	// Numeric readings classify by nearest calibration value.
	numeric := models.NewReading(models.KindBPSystolic, 145)
	if got := levelOfReading(numeric); got != models.LevelHigh {
		t.Errorf("numeric bp reading = %s, want high", got)
	}

	healthy := models.NewReading(models.KindSleep, 9)
	if got := levelOfReading(healthy); got != models.LevelLow {
		t.Errorf("healthy sleep reading = %s, want low", got)
	}
}

package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	want := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	for _, input := range []string{"", "02-03-2026", "2026/03/02", "2026-13-01", "March 2"} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", input)
		}
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-12-31")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got := FormatDate(parsed); got != "2026-12-31" {
		t.Errorf("FormatDate = %q, want %q", got, "2026-12-31")
	}
}

func TestValidateDateRange(t *testing.T) {
	start, end, err := ValidateDateRange("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("ValidateDateRange returned error: %v", err)
	}
	if !start.Before(end) {
		t.Errorf("start %v should be before end %v", start, end)
	}

	// Same day is a valid range.
	if _, _, err := ValidateDateRange("2026-03-01", "2026-03-01"); err != nil {
		t.Errorf("single-day range returned error: %v", err)
	}

	if _, _, err := ValidateDateRange("2026-04-01", "2026-03-01"); err == nil {
		t.Error("inverted range succeeded, want error")
	}
	if _, _, err := ValidateDateRange("bad", "2026-03-01"); err == nil {
		t.Error("malformed start succeeded, want error")
	}
	if _, _, err := ValidateDateRange("2026-03-01", "bad"); err == nil {
		t.Error("malformed end succeeded, want error")
	}
}

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"07:00", 420},
		{"08:30", 510},
		{"15:30", 930},
		{"18:00", 1080},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ParseClockMinutes(tt.input)
		if err != nil {
			t.Errorf("ParseClockMinutes(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClockMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}

	for _, input := range []string{"", "7", "25:00", "07:60", "noon"} {
		if _, err := ParseClockMinutes(input); err == nil {
			t.Errorf("ParseClockMinutes(%q) succeeded, want error", input)
		}
	}
}

func TestClockMinutesOf(t *testing.T) {
	ts := time.Date(2026, time.March, 2, 16, 45, 12, 0, time.Local)
	if got := ClockMinutesOf(ts); got != 16*60+45 {
		t.Errorf("ClockMinutesOf = %d, want %d", got, 16*60+45)
	}
}

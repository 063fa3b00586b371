package utils

import (
	"testing"
	"time"
)

func TestParseDateInLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	got, err := ParseDateInLocation("2026-09-05", loc)
	if err != nil {
		t.Fatalf("ParseDateInLocation() failed: %v", err)
	}
	want := time.Date(2026, 9, 5, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("parsed = %v, want %v", got, want)
	}

	if _, err := ParseDateInLocation("09/05/2026", loc); err == nil {
		t.Error("non-ISO date should fail to parse")
	}
}

func TestDayBoundaries(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	// 03:30 UTC on Sep 6 is still Sep 5 in New York.
	instant := time.Date(2026, 9, 6, 3, 30, 0, 0, time.UTC)

	start := StartOfDay(instant, loc)
	if start.Day() != 5 || start.Hour() != 0 {
		t.Errorf("StartOfDay = %v, want midnight Sep 5 local", start)
	}

	end := EndOfDay(instant, loc)
	if end.Day() != 5 || end.Hour() != 23 {
		t.Errorf("EndOfDay = %v, want end of Sep 5 local", end)
	}

	if got := DayKey(instant, loc); got != "2026-09-05" {
		t.Errorf("DayKey = %q, want 2026-09-05", got)
	}
	if got := DayKey(instant, time.UTC); got != "2026-09-06" {
		t.Errorf("DayKey UTC = %q, want 2026-09-06", got)
	}
}

func TestSameDay(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	a := time.Date(2026, 9, 6, 3, 30, 0, 0, time.UTC)
	b := time.Date(2026, 9, 5, 22, 0, 0, 0, loc)
	if !SameDay(a, b, loc) {
		t.Error("instants on the same local day should match")
	}
	if SameDay(a, b, time.UTC) {
		t.Error("the same instants fall on different UTC days")
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		tz   string
		want bool
	}{
		{"", true},
		{"Local", true},
		{"UTC", true},
		{"America/New_York", true},
		{"Mars/Olympus_Mons", false},
	}
	for _, tt := range tests {
		if got := ValidateTimezone(tt.tz); got != tt.want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", tt.tz, got, tt.want)
		}
	}
}

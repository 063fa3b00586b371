package cli

import (
	"testing"
	"time"
)

func TestParseWhen(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")

	tests := []struct {
		in       string
		want     time.Time
		dateOnly bool
		wantErr  bool
	}{
		{"2026-09-05", time.Date(2026, 9, 5, 0, 0, 0, 0, loc), true, false},
		{"2026-09-05 14:30", time.Date(2026, 9, 5, 14, 30, 0, 0, loc), false, false},
		{"09/05/2026", time.Time{}, false, true},
		{"tomorrow", time.Time{}, false, true},
	}

	for _, tt := range tests {
		got, dateOnly, err := ParseWhen(tt.in, loc)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWhen(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWhen(%q) failed: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseWhen(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if dateOnly != tt.dateOnly {
			t.Errorf("ParseWhen(%q) dateOnly = %v, want %v", tt.in, dateOnly, tt.dateOnly)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{" a , b ,", []string{"a", "b"}},
		{",,", nil},
	}
	for _, tt := range tests {
		got := SplitList(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitList(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

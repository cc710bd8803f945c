package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := map[string]struct {
		in    string
		want  time.Duration
		label string
	}{
		"default":   {in: "", want: 2 * week, label: "2w"},
		"days":      {in: "3d", want: 3 * day, label: "3d"},
		"composite": {in: "1w2d12h", want: week + 2*day + 12*time.Hour, label: "1w2d12h"},
		"aliases":   {in: " 1 Week 2 days ", want: week + 2*day, label: "1w2d"},
		"normalize": {in: "10d", want: 10 * day, label: "1w3d"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, label, err := ParseWindow(tc.in)
			if err != nil {
				t.Fatalf("ParseWindow(%q) = %v", tc.in, err)
			}
			if got != tc.want || label != tc.label {
				t.Fatalf("ParseWindow(%q) = %v %q, want %v %q", tc.in, got, label, tc.want, tc.label)
			}
		})
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3", "5m", "0d", "53w", "d3"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Errorf("ParseWindow(%q) expected error", in)
		}
	}
}

func TestFormatWindow(t *testing.T) {
	if got := FormatWindow(30 * time.Minute); got != "0h" {
		t.Fatalf("FormatWindow(30m) = %q", got)
	}
	if got := FormatWindow(week + time.Hour); got != "1w1h" {
		t.Fatalf("FormatWindow(1w1h) = %q", got)
	}
}

func TestDayStarts(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.Local)
	days := DayStarts(now, 14*24*time.Hour)
	if len(days) != 15 {
		t.Fatalf("expected 15 days, got %d", len(days))
	}
	if !days[0].Equal(now.Add(-14 * 24 * time.Hour)) {
		t.Fatalf("unexpected first day %v", days[0])
	}
	if !days[14].Equal(now) {
		t.Fatalf("expected last day to be now, got %v", days[14])
	}

	if got := len(DayStarts(now, 36*time.Hour)); got != 2 {
		t.Fatalf("expected 2 days for 36h, got %d", got)
	}
	if got := len(DayStarts(now, time.Hour)); got != 1 {
		t.Fatalf("expected 1 day for 1h, got %d", got)
	}
}

package utils

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	ts := time.Date(2025, 12, 31, 23, 45, 0, 0, time.Local)
	if got := DayKey(ts); got != "2025-12-31" {
		t.Errorf("DayKey() = %q, want %q", got, "2025-12-31")
	}

	// Single-digit month and day are zero-padded
	ts = time.Date(2026, 1, 4, 0, 0, 0, 0, time.Local)
	if got := DayKey(ts); got != "2026-01-04" {
		t.Errorf("DayKey() = %q, want %q", got, "2026-01-04")
	}
}

func TestParseDayKey(t *testing.T) {
	got, err := ParseDayKey("2025-12-31")
	if err != nil {
		t.Fatalf("ParseDayKey() error = %v", err)
	}
	if DayKey(got) != "2025-12-31" {
		t.Errorf("round trip = %q, want %q", DayKey(got), "2025-12-31")
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("expected local midnight, got %v", got)
	}

	if _, err := ParseDayKey("31/12/2025"); err == nil {
		t.Error("expected error for malformed day key, got nil")
	}
}

func TestStartOfWeekMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "wednesday mid-week",
			in:   time.Date(2025, 12, 31, 15, 30, 0, 0, time.Local), // Wednesday
			want: "2025-12-29",
		},
		{
			name: "sunday belongs to previous monday",
			in:   time.Date(2026, 1, 4, 8, 0, 0, 0, time.Local), // Sunday
			want: "2025-12-29",
		},
		{
			name: "monday is its own week start",
			in:   time.Date(2025, 12, 29, 23, 59, 0, 0, time.Local),
			want: "2025-12-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeekMonday(tt.in)
			if DayKey(got) != tt.want {
				t.Errorf("StartOfWeekMonday() = %s, want %s", DayKey(got), tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
				t.Errorf("expected midnight, got %v", got)
			}
		})
	}
}

func TestEndOfWeekSunday(t *testing.T) {
	in := time.Date(2025, 12, 31, 12, 0, 0, 0, time.Local) // Wednesday
	got := EndOfWeekSunday(in)

	if DayKey(got) != "2026-01-04" {
		t.Errorf("EndOfWeekSunday() = %s, want 2026-01-04", DayKey(got))
	}
	if got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 || got.Nanosecond() != 999e6 {
		t.Errorf("expected 23:59:59.999, got %v", got)
	}
}

func TestWeekDays(t *testing.T) {
	got := WeekDays(time.Date(2025, 12, 31, 12, 0, 0, 0, time.Local))
	want := []string{
		"2025-12-29", "2025-12-30", "2025-12-31",
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04",
	}

	if len(got) != len(want) {
		t.Fatalf("WeekDays() returned %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WeekDays()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

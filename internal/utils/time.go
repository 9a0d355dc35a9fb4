package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/lockin/internal/constants"
)

// DayKey formats a timestamp as a local-time YYYY-MM-DD day key.
func DayKey(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// TodayKey returns the day key for the current local time.
func TodayKey() string {
	return DayKey(time.Now())
}

// ParseDayKey parses a YYYY-MM-DD day key into local midnight of that day.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// StartOfWeekMonday returns local midnight of the Monday of the week
// containing t. Weeks start on Monday; a Sunday belongs to the week that
// started six days earlier.
func StartOfWeekMonday(t time.Time) time.Time {
	t = t.Local()
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// EndOfWeekSunday returns 23:59:59.999 local on the Sunday of the week
// containing t.
func EndOfWeekSunday(t time.Time) time.Time {
	d := StartOfWeekMonday(t).AddDate(0, 0, 6)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999e6, d.Location())
}

// WeekDays returns the seven day keys of the week containing t, Monday first.
func WeekDays(t time.Time) []string {
	start := StartOfWeekMonday(t)
	keys := make([]string, 7)
	for i := range keys {
		keys[i] = DayKey(start.AddDate(0, 0, i))
	}
	return keys
}

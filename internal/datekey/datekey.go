// Package datekey converts between calendar instants and canonical local
// date keys ("YYYY-MM-DD"). Keys compare lexicographically in chronological
// order, which every sort in the planner relies on.
package datekey

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Key is a canonical local-calendar day identifier, "YYYY-MM-DD".
type Key = string

// ToKey formats t's local year/month/day as a date key. The instant's own
// location is used; there is no UTC normalization.
func ToKey(t time.Time) Key {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// FromKey returns local midnight of the day the key names. Invalid keys
// return the zero time and an error; callers in the render path treat that
// as "omit".
func FromKey(k Key) (time.Time, error) {
	parts := strings.Split(k, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date key %q", k)
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q", k)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date key %q", k)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// Today returns the key for the given clock's current local day.
func Today(now time.Time) Key {
	return ToKey(now)
}

// AddDays shifts a key by n calendar days. Invalid keys come back unchanged.
func AddDays(k Key, n int) Key {
	t, err := FromKey(k)
	if err != nil {
		return k
	}
	return ToKey(t.AddDate(0, 0, n))
}

// DaysBetween returns the number of calendar days from key a to key b
// (positive when b is after a). DST transitions make day lengths uneven, so
// the hour difference is rounded rather than truncated.
func DaysBetween(a, b Key) (int, error) {
	ta, err := FromKey(a)
	if err != nil {
		return 0, err
	}
	tb, err := FromKey(b)
	if err != nil {
		return 0, err
	}
	hours := tb.Sub(ta).Hours()
	return int(math.Round(hours / 24)), nil
}

// MondayOf returns the key of the Monday starting the week containing t.
func MondayOf(t time.Time) Key {
	diff := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return ToKey(t.AddDate(0, 0, -diff))
}

// ParseClock parses a "HH:MM" local clock string into fractional hours
// (e.g. "09:30" -> 9.5). Malformed strings report an error; callers fall
// back to defaults instead of failing.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return float64(hour) + float64(minute)/60, nil
}

// AddHour returns the clock string one hour after s, wrapping past midnight.
// Used by the legacy-record migration to default a missing end time.
func AddHour(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return s
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return s
	}
	return fmt.Sprintf("%02d:%02d", (hour+1)%24, minute)
}

// At combines a date key and a clock string into a local instant.
func At(k Key, clock string) (time.Time, error) {
	day, err := FromKey(k)
	if err != nil {
		return time.Time{}, err
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid clock %q", clock)
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return time.Time{}, fmt.Errorf("invalid clock %q", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

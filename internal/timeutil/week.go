package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// DateKeyLayout is the wire format for day-granular dates ("YYYY-MM-DD").
const DateKeyLayout = "2006-01-02"

// ErrInvalidDateFormat indicates a date key that does not match the
// strict YYYY-MM-DD pattern.
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// WeekStart returns the Monday of the week containing t, at the same
// clock time as t. Sunday counts as day 7, so it maps to the Monday
// six days earlier.
func WeekStart(t time.Time) time.Time {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	return t.AddDate(0, 0, -(day - 1))
}

// WeekEnd returns the Sunday of the week containing t: WeekStart(t) + 6 days.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}

// Normalize truncates t to 00:00:00.000 UTC, discarding time of day.
func Normalize(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDateKey parses a strict YYYY-MM-DD string as UTC midnight.
// Anything else, including non-padded components, fails with
// ErrInvalidDateFormat.
func ParseDateKey(s string) (time.Time, error) {
	if len(s) != len(DateKeyLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	t, err := time.ParseInLocation(DateKeyLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// FormatDateKey renders t as a YYYY-MM-DD key in UTC.
func FormatDateKey(t time.Time) string {
	return t.UTC().Format(DateKeyLayout)
}

// file: internals/helpers/week/week.go
//
// Pure calendar math for weekly timetables. All dates are handled as
// UTC calendar days; day-of-week is canonically Monday=1..Sunday=7
// (ISO). UI code counting Monday=0 converts via FromUIDayIndex.
package week

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t.UTC(), nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Truncate drops any time-of-day component, keeping the UTC calendar day.
func Truncate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOf returns the Monday on or before t. Idempotent.
func MondayOf(t time.Time) time.Time {
	d := Truncate(t)
	diff := (int(d.Weekday()) + 6) % 7 // Mon -> 0 ... Sun -> 6
	return d.AddDate(0, 0, -diff)
}

// AddDays shifts t by n days (n may be negative), rolling over
// month and year boundaries.
func AddDays(t time.Time, n int) time.Time {
	return Truncate(t).AddDate(0, 0, n)
}

// DayIndex maps a date to 1..7, Monday=1..Sunday=7.
func DayIndex(t time.Time) int {
	wd := int(Truncate(t).Weekday()) // Sun=0..Sat=6
	if wd == 0 {
		return 7
	}
	return wd
}

// FromUIDayIndex converts the 0-based UI convention (Mon=0..Sun=6)
// to the canonical 1-based index.
func FromUIDayIndex(i int) (int, error) {
	if i < 0 || i > 6 {
		return 0, fmt.Errorf("ui day index %d out of range 0..6", i)
	}
	return i + 1, nil
}

// FormatWithWeekday renders "DD-MM-YYYY (Weekday)" for display only.
func FormatWithWeekday(t time.Time) string {
	d := Truncate(t)
	return fmt.Sprintf("%02d-%02d-%04d (%s)", d.Day(), int(d.Month()), d.Year(), d.Weekday().String())
}

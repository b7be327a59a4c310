// Package datetime provides pure date/time helpers: month bounds, date
// ranges, string parsing and timezone conversion.
package datetime

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// MonthBounds returns the first and last date of the given month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, time.Time{}, fmt.Errorf("datetime: invalid month: %d", month)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// DateRange returns every date between start and end inclusive.
// An empty slice is returned when end precedes start.
func DateRange(start, end time.Time) []time.Time {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return []time.Time{}
	}
	days := int(end.Sub(start).Hours()/24) + 1
	dates := make([]time.Time, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// ParseDate parses a "YYYY-MM-DD" string into a date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime: parse date %q: %w", value, err)
	}
	return t, nil
}

// ParseClock parses a "HH:MM" string into a clock time on the zero date.
func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime: parse clock %q: %w", value, err)
	}
	return t, nil
}

// MakeAware interprets the wall-clock reading of t in the named zone.
func MakeAware(t time.Time, tz string) (time.Time, error) {
	loc, err := loadZone(tz)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), nil
}

// Convert reinterprets t's wall clock in fromTZ and expresses the instant in toTZ.
func Convert(t time.Time, fromTZ, toTZ string) (time.Time, error) {
	aware, err := MakeAware(t, fromTZ)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := loadZone(toTZ)
	if err != nil {
		return time.Time{}, err
	}
	return aware.In(loc), nil
}

func loadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("datetime: invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

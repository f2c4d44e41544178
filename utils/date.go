package utils

import (
	"time"

	"github.com/Ciztek/pwe/schema"
)

// ParseDate reads a wire-form ISO date into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(schema.DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// DaysBetween counts whole days from a to b. Both ends are expected to
// be date-only values (UTC midnight); a result of 0 means the same day.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// DatesBetween enumerates every date of the inclusive interval
// [start, end] in chronological order. start after end yields nil.
func DatesBetween(start, end time.Time) []time.Time {
	if start.After(end) {
		return nil
	}
	dates := make([]time.Time, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// ClampInt bounds v to the inclusive interval [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

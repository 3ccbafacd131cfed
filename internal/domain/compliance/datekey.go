// Package compliance turns a sparse attendance log into per-week counts,
// in-office percentages and the rolling belt score.
//
// Everything here is a pure function of its arguments. The current instant is
// always passed in by the caller, nothing in this package reads the clock.
package compliance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain"
)

var (
	// ErrInvalidDate is returned for zero instants and malformed date keys.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidWindow is returned when a week window size is not positive.
	ErrInvalidWindow = errors.New("invalid week window size")
)

// EncodeDateKey renders the calendar day of t, in t's own location, as YYYY-MM-DD.
func EncodeDateKey(t time.Time) string {
	return t.Format(domain.DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into local midnight of that day in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(domain.DateKeyLayout, strings.TrimSpace(key), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, key)
	}
	return t, nil
}

// startOfDay drops the time-of-day component, keeping the location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// addDays moves by calendar days, so DST transitions never shift the day.
func addDays(t time.Time, days int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+days, 0, 0, 0, 0, t.Location())
}

// weekdayMon0 is the weekday index with Monday=0 ... Sunday=6.
func weekdayMon0(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

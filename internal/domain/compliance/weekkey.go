package compliance

import (
	"fmt"
	"math"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

// WeekKeyOf returns the ISO-8601 week of t as YYYY-Www.
//
// The ISO year is the year of the week's Thursday, so late December can land
// in week 1 of the next year and early January in week 52/53 of the previous.
func WeekKeyOf(t time.Time) entity.WeekKey {
	monday := MondayOf(t)
	isoYear := addDays(monday, domain.Thursday-domain.Monday).Year()

	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, t.Location())
	jan4Weekday := int(jan4.Weekday())
	if jan4Weekday == 0 { // Sunday = 0 in Go, but we want 7 for ISO 8601
		jan4Weekday = domain.Sunday
	}
	anchorMonday := addDays(jan4, -(jan4Weekday - domain.Monday))

	week := 1 + int(math.Round(float64(daysBetween(anchorMonday, monday))/7))

	return entity.WeekKey(fmt.Sprintf("%04d-W%02d", isoYear, week))
}

// daysBetween counts calendar days from a to b, ignoring locations and DST.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

package compliance

import (
	"fmt"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

const spanLabelLayout = "01/02"

// LastNWeeks returns the n most recent Monday-Friday spans anchored at now,
// most recent first. The first span is the week containing now.
func LastNWeeks(now time.Time, n int) ([]entity.WeekSpan, error) {
	if now.IsZero() {
		return nil, fmt.Errorf("%w: reference instant is not set", ErrInvalidDate)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, n)
	}

	monday := MondayOf(now)

	spans := make([]entity.WeekSpan, 0, n)
	for i := 0; i < n; i++ {
		start := addDays(monday, -7*i)
		end := addDays(start, domain.DaysPerWorkWeek-1)
		spans = append(spans, entity.WeekSpan{
			Start: start,
			End:   end,
			Label: start.Format(spanLabelLayout) + "-" + end.Format(spanLabelLayout),
		})
	}

	return spans, nil
}

// MondayOf returns local midnight of the Monday starting t's week.
// Sunday belongs to the week of the preceding Monday.
func MondayOf(t time.Time) time.Time {
	return addDays(startOfDay(t), -weekdayMon0(t))
}

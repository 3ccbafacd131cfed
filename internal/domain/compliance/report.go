package compliance

import (
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

// Report builds the trailing window report of log as seen at now.
func Report(log entity.AttendanceLog, now time.Time) (*entity.Report, error) {
	spans, err := LastNWeeks(now, domain.DefaultWindowWeeks)
	if err != nil {
		return nil, err
	}

	summaries := Summarize(log, spans)
	percents := Percentages(summaries, spans)

	weeks := make([]entity.WeekReport, 0, len(spans))
	for i, span := range spans {
		weeks = append(weeks, entity.WeekReport{
			Span:    span,
			Summary: summaries[WeekKeyOf(span.Start)],
			Percent: percents[i].Percent,
			Badge:   BadgeFor(percents[i].Percent),
		})
	}

	belt := Belt(percents)

	return &entity.Report{
		GeneratedAt: now,
		Weeks:       weeks,
		Belt:        belt,
		Band:        BandFor(belt),
	}, nil
}

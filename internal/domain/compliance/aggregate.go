package compliance

import (
	"math"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

// Summarize counts the Monday-Friday categories of every span. A day with no
// entry, or with an unrecognized category, counts as remote. The log is only
// read.
func Summarize(log entity.AttendanceLog, spans []entity.WeekSpan) map[entity.WeekKey]entity.WeekSummary {
	summaries := make(map[entity.WeekKey]entity.WeekSummary, len(spans))

	for _, span := range spans {
		key := WeekKeyOf(span.Start)
		summary := entity.WeekSummary{WeekKey: key}

		for d := 0; d < domain.DaysPerWorkWeek; d++ {
			switch log[EncodeDateKey(addDays(span.Start, d))] {
			case entity.CategoryOnCampus:
				summary.OnCampus++
			case entity.CategoryOutOfOffice:
				summary.OutOfOffice++
			default:
				summary.Remote++
			}
			summary.Total++
		}

		summaries[key] = summary
	}

	return summaries
}

// Percentages returns one entry per span, in span order, with the rounded
// share of on-campus days. Spans without a summary or without countable days
// get a nil percent.
func Percentages(summaries map[entity.WeekKey]entity.WeekSummary, spans []entity.WeekSpan) []entity.WeekPercent {
	percents := make([]entity.WeekPercent, 0, len(spans))

	for _, span := range spans {
		wp := entity.WeekPercent{Week: span.Label}
		if summary, ok := summaries[WeekKeyOf(span.Start)]; ok {
			wp.Percent = percentOf(summary)
		}
		percents = append(percents, wp)
	}

	return percents
}

func percentOf(s entity.WeekSummary) *int {
	if s.Total <= 0 {
		return nil
	}
	p := int(math.Round(float64(s.OnCampus) / float64(s.Total) * 100))
	return &p
}

package compliance

import (
	"math"
	"sort"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
)

// Belt scores the best domain.BestOfWeeks weeks of the sequence. Weeks
// without data count as 0. Which weeks are best depends on value only, never
// on recency. An empty sequence scores 0.
func Belt(percents []entity.WeekPercent) int {
	if len(percents) == 0 {
		return 0
	}

	values := make([]int, 0, len(percents))
	for _, wp := range percents {
		if wp.Percent == nil {
			values = append(values, 0)
			continue
		}
		values = append(values, *wp.Percent)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	if len(values) > domain.BestOfWeeks {
		values = values[:domain.BestOfWeeks]
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	return int(math.Round(float64(sum) / float64(len(values))))
}

// BandFor classifies a belt score.
func BandFor(belt int) entity.Band {
	switch {
	case belt >= domain.CompliantThreshold:
		return entity.BandCompliant
	case belt > domain.MarginalThreshold:
		return entity.BandMarginal
	default:
		return entity.BandNonCompliant
	}
}

// BadgeFor classifies a single week. Only exactly 40% is marginal, unlike the
// belt band which uses a range.
func BadgeFor(percent *int) entity.Badge {
	switch {
	case percent == nil:
		return entity.BadgeNoData
	case *percent >= domain.CompliantThreshold:
		return entity.BadgeCompliant
	case *percent == domain.MarginalThreshold:
		return entity.BadgeMarginal
	default:
		return entity.BadgeNonCompliant
	}
}

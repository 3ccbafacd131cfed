package compliance

import (
	"testing"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekPercents(values ...int) []entity.WeekPercent {
	out := make([]entity.WeekPercent, 0, len(values))
	for _, v := range values {
		out = append(out, entity.WeekPercent{Percent: intPtr(v)})
	}
	return out
}

func TestBelt(t *testing.T) {
	tests := []struct {
		name     string
		percents []entity.WeekPercent
		want     int
	}{
		{
			name:     "Should score the best 8 weeks and drop the rest",
			percents: weekPercents(100, 100, 100, 100, 100, 100, 100, 100, 0, 0, 0, 0),
			want:     100,
		},
		{
			name:     "Should score zero for all zero weeks",
			percents: weekPercents(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
			want:     0,
		},
		{
			name:     "Should ignore the four weakest weeks",
			percents: weekPercents(80, 80, 80, 80, 80, 80, 80, 80, 20, 20, 20, 20),
			want:     80,
		},
		{
			name:     "Should not depend on week order",
			percents: weekPercents(20, 80, 20, 80, 80, 20, 80, 80, 20, 80, 80, 80),
			want:     80,
		},
		{
			name:     "Should score zero for an empty sequence",
			percents: nil,
			want:     0,
		},
		{
			name: "Should count missing percents as zero",
			percents: []entity.WeekPercent{
				{Percent: nil}, {Percent: nil}, {Percent: intPtr(100)}, {Percent: intPtr(100)},
				{Percent: intPtr(100)}, {Percent: intPtr(100)}, {Percent: intPtr(100)}, {Percent: intPtr(100)},
			},
			want: 75,
		},
		{
			name:     "Should round the mean half away from zero",
			percents: weekPercents(60, 60, 60, 60, 60, 60, 60, 40, 0, 0, 0, 0),
			want:     58,
		},
		{
			name:     "Should round the mean down below the half",
			percents: weekPercents(61, 60, 40, 40, 40, 40, 40, 40, 20, 20),
			want:     45,
		},
		{
			name:     "Should average all weeks when fewer than 8 are given",
			percents: weekPercents(40, 80),
			want:     60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Belt(tt.percents))
		})
	}
}

func TestBelt_DoesNotReorderInput(t *testing.T) {
	percents := weekPercents(0, 100, 20, 80)

	Belt(percents)

	assert.Equal(t, weekPercents(0, 100, 20, 80), percents)
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		belt int
		want entity.Band
	}{
		{belt: 0, want: entity.BandNonCompliant},
		{belt: 39, want: entity.BandNonCompliant},
		{belt: 40, want: entity.BandNonCompliant},
		{belt: 41, want: entity.BandMarginal},
		{belt: 59, want: entity.BandMarginal},
		{belt: 60, want: entity.BandCompliant},
		{belt: 100, want: entity.BandCompliant},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.belt), "belt %d", tt.belt)
	}
}

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		name    string
		percent *int
		want    entity.Badge
	}{
		{name: "no data", percent: nil, want: entity.BadgeNoData},
		{name: "zero", percent: intPtr(0), want: entity.BadgeNonCompliant},
		{name: "just below marginal", percent: intPtr(39), want: entity.BadgeNonCompliant},
		{name: "exactly marginal", percent: intPtr(40), want: entity.BadgeMarginal},
		{name: "just above marginal", percent: intPtr(41), want: entity.BadgeNonCompliant},
		{name: "just below compliant", percent: intPtr(59), want: entity.BadgeNonCompliant},
		{name: "compliant", percent: intPtr(60), want: entity.BadgeCompliant},
		{name: "full week", percent: intPtr(100), want: entity.BadgeCompliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BadgeFor(tt.percent))
		})
	}
}

func TestReport(t *testing.T) {
	t.Run("Should score an empty log as non compliant", func(t *testing.T) {
		report, err := Report(nil, refNow)
		require.NoError(t, err)

		require.Len(t, report.Weeks, 12)
		for _, week := range report.Weeks {
			assert.Equal(t, 5, week.Summary.Remote)
			assert.Equal(t, intPtr(0), week.Percent)
			assert.Equal(t, entity.BadgeNonCompliant, week.Badge)
		}
		assert.Equal(t, 0, report.Belt)
		assert.Equal(t, entity.BandNonCompliant, report.Band)
		assert.Equal(t, refNow, report.GeneratedAt)
	})

	t.Run("Should use the best 8 of the last 12 weeks", func(t *testing.T) {
		spans := mustWindow(t, refNow)
		log := entity.AttendanceLog{}
		for i, span := range spans {
			if i%3 == 0 {
				continue // weeks 0, 3, 6 and 9 stay fully remote
			}
			for d := 0; d < 5; d++ {
				log[EncodeDateKey(span.Start.AddDate(0, 0, d))] = entity.CategoryOnCampus
			}
		}

		report, err := Report(log, refNow)
		require.NoError(t, err)

		assert.Equal(t, "05/13-05/17", report.Weeks[0].Span.Label)
		assert.Equal(t, entity.BadgeNonCompliant, report.Weeks[0].Badge)
		assert.Equal(t, entity.BadgeCompliant, report.Weeks[1].Badge)
		assert.Equal(t, entity.WeekKey("2024-W19"), report.Weeks[1].Summary.WeekKey)
		assert.Equal(t, 100, report.Belt)
		assert.Equal(t, entity.BandCompliant, report.Band)
	})

	t.Run("Should fail fast on a zero instant", func(t *testing.T) {
		report, err := Report(entity.AttendanceLog{}, time.Time{})
		require.ErrorIs(t, err, ErrInvalidDate)
		assert.Nil(t, report)
	})

	t.Run("Should be a pure function of log and now", func(t *testing.T) {
		log := entity.AttendanceLog{
			"2024-05-13": entity.CategoryOnCampus,
			"2024-04-02": entity.CategoryOutOfOffice,
			"2024-03-20": entity.CategoryOnCampus,
		}

		first, err := Report(log, refNow)
		require.NoError(t, err)
		second, err := Report(log, refNow.Add(time.Hour))
		require.NoError(t, err)

		// Same day, so only the generation instant differs
		second.GeneratedAt = first.GeneratedAt
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Report mismatch (-first +second):\n%s", diff)
		}
	})
}

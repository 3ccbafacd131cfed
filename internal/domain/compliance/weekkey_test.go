package compliance

import (
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestWeekKeyOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want entity.WeekKey
	}{
		{
			name: "Should put Friday Jan 1st 2021 in the last week of 2020",
			date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			want: "2020-W53",
		},
		{
			name: "Should put Sunday Jan 1st 2023 in the last week of 2022",
			date: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
			want: "2022-W52",
		},
		{
			name: "Should put Monday Dec 29th 2025 in week 1 of 2026",
			date: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			want: "2026-W01",
		},
		{
			name: "Should put Sunday Jan 3rd 2027 in week 53 of 2026",
			date: time.Date(2027, 1, 3, 0, 0, 0, 0, time.UTC),
			want: "2026-W53",
		},
		{
			name: "Should handle a mid year Monday",
			date: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
			want: "2024-W20",
		},
		{
			name: "Should keep Sunday in the week of the preceding Monday",
			date: time.Date(2024, 5, 19, 23, 59, 0, 0, time.UTC),
			want: "2024-W20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekKeyOf(tt.date))
		})
	}
}

func TestWeekKeyOf_MatchesISOCalendar(t *testing.T) {
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC+13", 13*60*60),
		time.FixedZone("UTC-11", -11*60*60),
	}

	for _, loc := range zones {
		day := time.Date(2015, 1, 1, 18, 0, 0, 0, loc)
		end := time.Date(2031, 1, 1, 0, 0, 0, 0, loc)
		for ; day.Before(end); day = day.AddDate(0, 0, 1) {
			year, week := day.ISOWeek()
			want := entity.WeekKey(fmt.Sprintf("%04d-W%02d", year, week))
			if got := WeekKeyOf(day); got != want {
				t.Fatalf("WeekKeyOf(%s) = %s, want %s", day.Format(time.RFC3339), got, want)
			}
		}
	}
}

func TestWeekKeyOf_SameWeekSameKey(t *testing.T) {
	monday := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	want := WeekKeyOf(monday)
	assert.Equal(t, entity.WeekKey("2025-W01"), want)

	for d := 1; d < 7; d++ {
		assert.Equal(t, want, WeekKeyOf(monday.AddDate(0, 0, d)), "day offset %d", d)
	}
	assert.NotEqual(t, want, WeekKeyOf(monday.AddDate(0, 0, 7)))
	assert.NotEqual(t, want, WeekKeyOf(monday.AddDate(0, 0, -1)))
}

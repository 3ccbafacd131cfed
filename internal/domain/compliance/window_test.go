package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDateKey(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "Should zero pad month and day",
			date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			want: "2024-03-05",
		},
		{
			name: "Should ignore time of day",
			date: time.Date(2024, 3, 5, 23, 59, 59, 999, time.UTC),
			want: "2024-03-05",
		},
		{
			name: "Should use the date's own location",
			date: time.Date(2024, 3, 5, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60)),
			want: "2024-03-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeDateKey(tt.date))
		})
	}
}

func TestParseDateKey(t *testing.T) {
	got, err := ParseDateKey("2024-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-02-29", EncodeDateKey(got))

	for _, bad := range []string{"", "2024-13-01", "2023-02-29", "05/13/2024", "2024-5-1"} {
		_, err := ParseDateKey(bad, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDate, "key %q", bad)
	}
}

func TestLastNWeeks(t *testing.T) {
	type args struct {
		now time.Time
		n   int
	}
	tests := []struct {
		name       string
		args       args
		wantFirst  string
		wantLast   string
		wantLength int
	}{
		{
			name:       "Should anchor a Wednesday to its Monday",
			args:       args{now: time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC), n: 12},
			wantFirst:  "05/13-05/17",
			wantLast:   "02/26-03/01",
			wantLength: 12,
		},
		{
			name:       "Should keep Monday as its own anchor",
			args:       args{now: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), n: 12},
			wantFirst:  "05/13-05/17",
			wantLast:   "02/26-03/01",
			wantLength: 12,
		},
		{
			name:       "Should map Sunday back to the preceding Monday",
			args:       args{now: time.Date(2024, 5, 19, 9, 0, 0, 0, time.UTC), n: 12},
			wantFirst:  "05/13-05/17",
			wantLast:   "02/26-03/01",
			wantLength: 12,
		},
		{
			name:       "Should cross the year boundary",
			args:       args{now: time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC), n: 2},
			wantFirst:  "12/30-01/03",
			wantLast:   "12/23-12/27",
			wantLength: 2,
		},
		{
			name:       "Should return a single span",
			args:       args{now: time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC), n: 1},
			wantFirst:  "05/13-05/17",
			wantLast:   "05/13-05/17",
			wantLength: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, err := LastNWeeks(tt.args.now, tt.args.n)
			require.NoError(t, err)
			require.Len(t, spans, tt.wantLength)
			assert.Equal(t, tt.wantFirst, spans[0].Label)
			assert.Equal(t, tt.wantLast, spans[len(spans)-1].Label)
		})
	}
}

func TestLastNWeeks_WindowShape(t *testing.T) {
	start := time.Date(2023, 12, 1, 10, 0, 0, 0, time.UTC)
	for day := 0; day < 400; day++ {
		now := start.AddDate(0, 0, day)

		spans, err := LastNWeeks(now, 12)
		require.NoError(t, err)
		require.Len(t, spans, 12)

		for i, span := range spans {
			assert.Equal(t, time.Monday, span.Start.Weekday(), "now=%s span=%d", now, i)
			assert.Equal(t, time.Friday, span.End.Weekday(), "now=%s span=%d", now, i)
			assert.Equal(t, 4, daysBetween(span.Start, span.End))
			assert.Zero(t, span.Start.Hour())
			if i > 0 {
				assert.Equal(t, 7, daysBetween(span.Start, spans[i-1].Start), "spans must be 7 days apart, most recent first")
			}
		}

		assert.False(t, spans[0].Start.After(now))
		assert.Less(t, daysBetween(spans[0].Start, now), 7)
	}
}

func TestLastNWeeks_DSTLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("timezone database not available")
	}

	// The window spans the March 31st 2024 switch to summer time.
	spans, err := LastNWeeks(time.Date(2024, 4, 10, 12, 0, 0, 0, loc), 3)
	require.NoError(t, err)

	assert.Equal(t, "04/08-04/12", spans[0].Label)
	assert.Equal(t, "04/01-04/05", spans[1].Label)
	assert.Equal(t, "03/25-03/29", spans[2].Label)
	for _, span := range spans {
		assert.Zero(t, span.Start.Hour())
		assert.Zero(t, span.End.Hour())
	}
}

func TestLastNWeeks_InvalidInput(t *testing.T) {
	_, err := LastNWeeks(time.Time{}, 12)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = LastNWeeks(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = LastNWeeks(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), -3)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

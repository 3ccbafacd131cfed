package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/compliance"
	"github.com/diegoclair/hybrid-attendance-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseNow(t *testing.T) {
	fallback := func() time.Time { return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC) }

	clock, err := parseNow("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback(), clock())

	clock, err = parseNow("2024-05-15", fallback)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", compliance.EncodeDateKey(clock()))

	_, err = parseNow("15/05/2024", fallback)
	assert.ErrorIs(t, err, compliance.ErrInvalidDate)
}

func Test_writeReport(t *testing.T) {
	report, err := compliance.Report(entity.AttendanceLog{
		"2024-05-13": entity.CategoryOnCampus,
		"2024-05-14": entity.CategoryOnCampus,
		"2024-05-15": entity.CategoryOutOfOffice,
	}, time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeReport(&out, "U123", report))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "Report for U123 as of 2024-05-15", lines[0])
	assert.Contains(t, lines[2], "WEEK")
	assert.Regexp(t, `^2024-W20\s+05/13-05/17\s+2\s+2\s+1\s+40%\s+marginal$`, lines[3])
	assert.Regexp(t, `^2024-W19\s+05/06-05/10\s+0\s+5\s+0\s+0%\s+non-compliant$`, lines[4])
	// 40 / 8 = 5
	assert.Equal(t, "Belt: 5% (non-compliant)", lines[len(lines)-1])
}

func Test_writeReportJSON(t *testing.T) {
	report, err := compliance.Report(entity.AttendanceLog{}, time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeReportJSON(&out, report))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, float64(0), got["belt"])
	assert.Equal(t, "non-compliant", got["band"])
	assert.Len(t, got["weeks"], 12)
}

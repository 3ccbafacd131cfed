package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkCategory(t *testing.T) {
	tests := []struct {
		value  string
		want   WorkCategory
		wantOK bool
	}{
		{value: "on-campus", want: CategoryOnCampus, wantOK: true},
		{value: "remote", want: CategoryRemote, wantOK: true},
		{value: "out-of-office", want: CategoryOutOfOffice, wantOK: true},
		{value: " Remote ", want: CategoryRemote, wantOK: true},
		{value: "", want: CategoryUnknown, wantOK: false},
		{value: "onsite", want: CategoryUnknown, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseWorkCategory(tt.value)
		assert.Equal(t, tt.want, got, "value %q", tt.value)
		assert.Equal(t, tt.wantOK, ok, "value %q", tt.value)
	}
}

func TestWorkCategory_String(t *testing.T) {
	assert.Equal(t, "on-campus", CategoryOnCampus.String())
	assert.Equal(t, "remote", CategoryRemote.String())
	assert.Equal(t, "out-of-office", CategoryOutOfOffice.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
	assert.False(t, CategoryUnknown.IsKnown())
	assert.True(t, CategoryOutOfOffice.IsKnown())
}

func TestAttendanceLog_JSON(t *testing.T) {
	raw := `{"2024-05-13":"on-campus","2024-05-14":"out-of-office","2024-05-15":"gym","2024-05-16":""}`

	var log AttendanceLog
	require.NoError(t, json.Unmarshal([]byte(raw), &log))

	assert.Equal(t, AttendanceLog{
		"2024-05-13": CategoryOnCampus,
		"2024-05-14": CategoryOutOfOffice,
		"2024-05-15": CategoryUnknown,
		"2024-05-16": CategoryUnknown,
	}, log)

	out, err := json.Marshal(AttendanceLog{"2024-05-13": CategoryRemote})
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-05-13":"remote"}`, string(out))
}

package entity

import (
	"strings"
	"time"
)

// WorkCategory is where a workday was spent.
type WorkCategory int

const (
	// CategoryUnknown is the zero value; it covers unset and unrecognized values.
	CategoryUnknown WorkCategory = iota
	CategoryOnCampus
	CategoryRemote
	CategoryOutOfOffice
)

// Wire values of the recognized categories
const (
	OnCampusValue    = "on-campus"
	RemoteValue      = "remote"
	OutOfOfficeValue = "out-of-office"
)

var categoryValues = map[WorkCategory]string{
	CategoryOnCampus:    OnCampusValue,
	CategoryRemote:      RemoteValue,
	CategoryOutOfOffice: OutOfOfficeValue,
}

var categoryByValue = map[string]WorkCategory{
	OnCampusValue:    CategoryOnCampus,
	RemoteValue:      CategoryRemote,
	OutOfOfficeValue: CategoryOutOfOffice,
}

// ParseWorkCategory returns the category for a wire value. The second return
// is false when the value is not one of the recognized categories.
func ParseWorkCategory(value string) (WorkCategory, bool) {
	c, ok := categoryByValue[strings.ToLower(strings.TrimSpace(value))]
	return c, ok
}

// WorkCategoryFromValue is the lenient form of ParseWorkCategory, anything
// unrecognized becomes CategoryUnknown.
func WorkCategoryFromValue(value string) WorkCategory {
	c, _ := ParseWorkCategory(value)
	return c
}

func (c WorkCategory) String() string {
	if v, ok := categoryValues[c]; ok {
		return v
	}
	return "unknown"
}

// IsKnown reports whether c is one of the three recognized categories.
func (c WorkCategory) IsKnown() bool {
	_, ok := categoryValues[c]
	return ok
}

func (c WorkCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText never fails: unrecognized values decode to CategoryUnknown.
func (c *WorkCategory) UnmarshalText(text []byte) error {
	*c = WorkCategoryFromValue(string(text))
	return nil
}

// AttendanceLog maps a date key (YYYY-MM-DD) to the category marked for that day.
type AttendanceLog map[string]WorkCategory

// AttendanceEntry is one stored mark of a user's attendance log.
type AttendanceEntry struct {
	UserID    string       `json:"user_id"`
	DateKey   string       `json:"date"`
	Category  WorkCategory `json:"category"`
	UpdatedAt time.Time    `json:"updated_at"`
}

package entity

import "time"

// WeekKey identifies an ISO-8601 week, formatted as YYYY-Www.
type WeekKey string

// WeekSpan is one tracked Monday-Friday work week.
type WeekSpan struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// WeekSummary holds the per-category day counts of one week.
type WeekSummary struct {
	WeekKey     WeekKey `json:"week_key"`
	OnCampus    int     `json:"on_campus"`
	Remote      int     `json:"remote"`
	OutOfOffice int     `json:"out_of_office"`
	Total       int     `json:"total"`
}

// WeekPercent is the in-office percentage of one week. Percent is nil when
// the week had no countable days.
type WeekPercent struct {
	Week    string `json:"week"`
	Percent *int   `json:"percent"`
}

type Badge string

const (
	BadgeCompliant    Badge = "compliant"
	BadgeMarginal     Badge = "marginal"
	BadgeNonCompliant Badge = "non-compliant"
	BadgeNoData       Badge = "no-data"
)

type Band string

const (
	BandCompliant    Band = "compliant"
	BandMarginal     Band = "marginal"
	BandNonCompliant Band = "non-compliant"
)

// WeekReport joins everything known about one week of the window.
type WeekReport struct {
	Span    WeekSpan    `json:"span"`
	Summary WeekSummary `json:"summary"`
	Percent *int        `json:"percent"`
	Badge   Badge       `json:"badge"`
}

// Report is the full compliance picture for a log at a given instant.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Weeks       []WeekReport `json:"weeks"`
	Belt        int          `json:"belt"`
	Band        Band         `json:"band"`
}

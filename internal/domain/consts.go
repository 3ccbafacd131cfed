package domain

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Workdays represents Monday through Friday in ISO format
var Workdays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

// DaysPerWorkWeek is the number of tracked days in every week span
const DaysPerWorkWeek = 5

// DefaultWindowWeeks is how many trailing weeks the reports cover
const DefaultWindowWeeks = 12

// BestOfWeeks is how many of the trailing weeks count towards the belt score
const BestOfWeeks = 8

// Compliance thresholds, in percent
const (
	CompliantThreshold = 60
	MarginalThreshold  = 40
)

// DateKeyLayout is the canonical layout of an attendance date key
const DateKeyLayout = "2006-01-02"

// DefaultReminderText is posted by the daily reminder
const DefaultReminderText = "Where did you work today? Use `/attendance mark on-campus|remote|out-of-office` to log it."

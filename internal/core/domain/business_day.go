package domain

import "time"

// DisplayDateLayout is the day-month-year layout used in notification templates.
const DisplayDateLayout = "02-01-2006"

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// PreviousDayWindow returns [start of yesterday, start of today) relative to now in loc.
func PreviousDayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	todayStart := StartOfDay(now, loc)
	return todayStart.AddDate(0, 0, -1), todayStart
}

// FormatDisplayDate renders t as DD-MM-YYYY in loc.
func FormatDisplayDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DisplayDateLayout)
}

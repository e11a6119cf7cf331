package util

import "time"

// DateKeyLayout is the canonical zero-padded form of a calendar day.
const DateKeyLayout = "2006-01-02"

// DateKey converts a time to its canonical YYYY-MM-DD key in local time.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey converts a canonical date key back to midnight local time.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, time.Local)
}

// Midnight normalizes a time to 00:00:00 local on the same calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays shifts a time by n calendar days, preserving the clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// WeekdayLabel returns the short weekday name ("Mon") for a date.
func WeekdayLabel(t time.Time) string {
	return t.Format("Mon")
}

package model

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date form used throughout: YYYY-MM-DD.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a well-formed calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the given time as a calendar date string.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// MonthKey reduces a calendar date to its YYYY-MM month key. Month
// membership is a prefix match on this key.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// InMonth reports whether date falls in the month identified by monthKey.
func InMonth(date, monthKey string) bool {
	return strings.HasPrefix(date, monthKey)
}

// MonthName renders a YYYY-MM month key as a human-readable month
// ("June 2024"). Malformed keys are returned unchanged.
func MonthName(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format("January 2006")
}

// FormatDay renders a calendar date relative to today: "Today",
// "Yesterday", or a short date ("2 Jan", with year when it differs).
func FormatDay(date string, now time.Time) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	switch date {
	case today:
		return "Today"
	case yesterday:
		return "Yesterday"
	}
	if d.Year() != now.Year() {
		return d.Format("2 Jan 2006")
	}
	return d.Format("2 Jan")
}

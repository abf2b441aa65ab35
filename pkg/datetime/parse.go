// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/PROACTIVA-US/property-manager-sub001/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the output
	// date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// MonthsBetween returns the number of whole calendar months from first to
// second, computed from year and month components only. Days and times of
// day are deliberately ignored.
func MonthsBetween(first, second time.Time) int {
	return (second.Year()*constants.MonthsPerYear + int(second.Month())) -
		(first.Year()*constants.MonthsPerYear + int(first.Month()))
}

// SameOrAfterDay reports whether first falls on the same calendar day as
// second or later, ignoring time of day.
func SameOrAfterDay(first, second time.Time) bool {
	f := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(second.Year(), second.Month(), second.Day(), 0, 0, 0, 0, time.UTC)
	return !f.Before(s)
}

// BeforeDay reports whether first falls strictly before second by calendar
// day, ignoring time of day.
func BeforeDay(first, second time.Time) bool {
	return !SameOrAfterDay(first, second)
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateTimeLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateTimeLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}

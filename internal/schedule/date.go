package schedule

import (
	"fmt"
	"time"
)

// Date is an explicit calendar date. It is never an instant: conversion
// to time.Time happens only through the methods below, always in a single
// caller-supplied location, so the same Date maps to the same day no
// matter which host the code runs on.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a strict "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidFormat, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf extracts the calendar date of an instant as seen in its own
// location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// At combines the date with a time of day into an instant in loc.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Minutes()/60, t.Minutes()%60, 0, 0, loc)
}

// StartOfDay returns 00:00:00.000 of the date in loc.
func (d Date) StartOfDay(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// EndOfDay returns the first instant of the next day in loc. Day ranges
// are half-open: [StartOfDay, EndOfDay).
func (d Date) EndOfDay(loc *time.Location) time.Time {
	return d.StartOfDay(loc).AddDate(0, 0, 1)
}

// Weekday reports the day of week (Sunday = 0).
func (d Date) Weekday() time.Weekday {
	return d.StartOfDay(time.UTC).Weekday()
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

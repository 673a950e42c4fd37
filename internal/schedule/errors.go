package schedule

import "errors"

var (
	// ErrInvalidFormat is returned when a time or date string does not
	// match the expected layout.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange is returned when a minutes value falls outside a
	// single calendar day.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidInterval is returned for non-positive slot intervals.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrInvalidWindow is returned when open >= close.
	ErrInvalidWindow = errors.New("invalid working hours window")

	// ErrInvalidTimeOfDay is returned when a requested time does not fall
	// on any bookable slot for the day.
	ErrInvalidTimeOfDay = errors.New("time is not a bookable slot")
)

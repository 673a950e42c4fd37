package schedule

import "fmt"

// TimeOfDay is a wall-clock time expressed as minutes since midnight,
// in [0, 1439]. It carries no date and no timezone.
type TimeOfDay int

const minutesPerDay = 24 * 60

// NewTimeOfDay validates a minutes-since-midnight value.
func NewTimeOfDay(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return 0, fmt.Errorf("%w: %d minutes", ErrOutOfRange, minutes)
	}
	return TimeOfDay(minutes), nil
}

// ParseTimeOfDay parses a strict "HH:MM" 24-hour string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidFormat, s)
	}

	hh, ok1 := twoDigits(s[0], s[1])
	mm, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || hh > 23 || mm > 59 {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidFormat, s)
	}

	return TimeOfDay(hh*60 + mm), nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// Minutes returns the value as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Add advances the time by the given number of minutes. The result may
// exceed the end of the day; callers compare it against Close bounds.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availabilityByStart(annotated []SlotAvailability) map[string]bool {
	out := make(map[string]bool, len(annotated))
	for _, a := range annotated {
		out[a.Start] = a.Available
	}
	return out
}

func TestAnnotateAvailability(t *testing.T) {
	wh := WorkingHours{Open: mustTime(t, "09:00"), Close: mustTime(t, "12:00")}
	booked := []Booking{
		{Start: mustTime(t, "10:00"), DurationMin: 30, Status: StatusConfirmed},
	}

	slots, err := BookableSlots(wh, 30, 30)
	require.NoError(t, err)

	avail := availabilityByStart(AnnotateAvailability(slots, booked, 30))

	assert.True(t, avail["09:30"], "slot ending exactly when the booking starts is free")
	assert.False(t, avail["10:00"])
	assert.True(t, avail["10:30"], "slot starting exactly when the booking ends is free")
	assert.True(t, avail["11:30"])
}

func TestAnnotateAvailabilityFineGrid(t *testing.T) {
	wh := WorkingHours{Open: mustTime(t, "09:00"), Close: mustTime(t, "12:00")}
	booked := []Booking{
		{Start: mustTime(t, "10:00"), DurationMin: 30, Status: StatusConfirmed},
	}

	// 15-minute grid: a 10:15 start overlaps the 10:00–10:30 booking.
	slots, err := BookableSlots(wh, 15, 30)
	require.NoError(t, err)

	avail := availabilityByStart(AnnotateAvailability(slots, booked, 30))

	assert.False(t, avail["09:45"], "ends 10:15, inside the booking")
	assert.False(t, avail["10:00"])
	assert.False(t, avail["10:15"])
	assert.True(t, avail["10:30"])
}

func TestAnnotateAvailabilityStatusFilter(t *testing.T) {
	wh := WorkingHours{Open: mustTime(t, "09:00"), Close: mustTime(t, "12:00")}

	slots, err := BookableSlots(wh, 30, 30)
	require.NoError(t, err)

	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		booked := []Booking{
			{Start: mustTime(t, "10:00"), DurationMin: 30, Status: status},
		}
		avail := availabilityByStart(AnnotateAvailability(slots, booked, 30))
		assert.True(t, avail["10:00"], "%s bookings do not occupy slots", status)
	}

	booked := []Booking{
		{Start: mustTime(t, "10:00"), DurationMin: 30, Status: StatusPending},
	}
	avail := availabilityByStart(AnnotateAvailability(slots, booked, 30))
	assert.False(t, avail["10:00"], "pending bookings occupy slots")
}

func TestAnnotateAvailabilityLongService(t *testing.T) {
	wh := WorkingHours{Open: mustTime(t, "09:00"), Close: mustTime(t, "13:00")}
	booked := []Booking{
		{Start: mustTime(t, "09:30"), DurationMin: 30, Status: StatusConfirmed},
		{Start: mustTime(t, "11:00"), DurationMin: 30, Status: StatusConfirmed},
	}

	slots, err := BookableSlots(wh, 30, 120)
	require.NoError(t, err)

	// A two-hour service spanning both bookings is blocked by each.
	avail := availabilityByStart(AnnotateAvailability(slots, booked, 120))
	assert.False(t, avail["09:00"])
	assert.False(t, avail["10:00"])
	assert.False(t, avail["11:00"])
}

func TestIsSlotAvailable(t *testing.T) {
	wh := WorkingHours{Open: mustTime(t, "09:00"), Close: mustTime(t, "12:00")}
	booked := []Booking{
		{Start: mustTime(t, "10:00"), DurationMin: 30, Status: StatusConfirmed},
	}

	ok, err := IsSlotAvailable(wh, 30, 30, mustTime(t, "09:30"), booked)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsSlotAvailable(wh, 30, 30, mustTime(t, "10:00"), booked)
	require.NoError(t, err)
	assert.False(t, ok)

	// Off the grid: not aligned to the interval.
	_, err = IsSlotAvailable(wh, 30, 30, mustTime(t, "09:10"), booked)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)

	// Off the grid: would run past close.
	_, err = IsSlotAvailable(wh, 30, 30, mustTime(t, "11:45"), booked)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)

	// Outside working hours entirely.
	_, err = IsSlotAvailable(wh, 30, 30, mustTime(t, "08:00"), booked)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

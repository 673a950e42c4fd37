package schedule

import "fmt"

// WorkingHours is the open/close window for one calendar day. A lunch
// break is optional: it applies only when LunchEnd > LunchStart.
type WorkingHours struct {
	Open       TimeOfDay
	Close      TimeOfDay
	LunchStart TimeOfDay
	LunchEnd   TimeOfDay
}

// HasLunch reports whether a lunch break is configured.
func (wh WorkingHours) HasLunch() bool {
	return wh.LunchEnd > wh.LunchStart
}

func (wh WorkingHours) validate(intervalMin int) error {
	if intervalMin <= 0 {
		return fmt.Errorf("%w: %d minutes", ErrInvalidInterval, intervalMin)
	}
	if wh.Open >= wh.Close {
		return fmt.Errorf("%w: open %s, close %s", ErrInvalidWindow, wh.Open, wh.Close)
	}
	return nil
}

// GenerateSlots walks the open→close window at a fixed interval and
// returns every slot that fits entirely before close. This is the display
// grid for a time picker; it knows nothing about service durations and
// must not be used to decide bookability (see BookableSlots).
func GenerateSlots(wh WorkingHours, intervalMin int) ([]TimeOfDay, error) {
	return slots(wh, intervalMin, intervalMin, false)
}

// BookableSlots returns the slots on the interval grid at which a service
// of serviceMin minutes can start: slot + serviceMin <= close, and the
// service does not overlap the lunch break.
func BookableSlots(wh WorkingHours, intervalMin, serviceMin int) ([]TimeOfDay, error) {
	if serviceMin <= 0 {
		return nil, fmt.Errorf("%w: service duration %d minutes", ErrInvalidInterval, serviceMin)
	}
	return slots(wh, intervalMin, serviceMin, true)
}

func slots(wh WorkingHours, intervalMin, spanMin int, skipLunch bool) ([]TimeOfDay, error) {
	if err := wh.validate(intervalMin); err != nil {
		return nil, err
	}

	var out []TimeOfDay
	for cur := wh.Open; cur.Add(spanMin) <= wh.Close; cur = cur.Add(intervalMin) {
		if skipLunch && wh.HasLunch() && overlaps(cur, cur.Add(spanMin), wh.LunchStart, wh.LunchEnd) {
			continue
		}
		out = append(out, cur)
	}
	return out, nil
}

// overlaps tests two half-open intervals [aStart, aEnd) and [bStart, bEnd).
func overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

package schedule

// Status mirrors the booking lifecycle as far as availability is
// concerned: only pending and confirmed bookings occupy time.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// OccupiesSlot reports whether a booking in this status blocks other
// bookings. Cancelled bookings free their slot; completed bookings are in
// the past and never compete with a bookable slot.
func (s Status) OccupiesSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking is the projection of a persisted booking that availability
// checks need: where it starts, how long it runs, and whether it counts.
type Booking struct {
	Start       TimeOfDay
	DurationMin int
	Status      Status
}

// SlotAvailability is one annotated slot for the client's time picker.
type SlotAvailability struct {
	Slot      TimeOfDay `json:"-"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Available bool      `json:"available"`
}

// AnnotateAvailability classifies each slot as available or taken for a
// service of serviceMin minutes. A slot is taken iff some active booking
// overlaps [slot, slot+serviceMin) under the half-open interval test.
func AnnotateAvailability(slots []TimeOfDay, bookings []Booking, serviceMin int) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		out = append(out, SlotAvailability{
			Slot:      slot,
			Start:     slot.String(),
			End:       slot.Add(serviceMin).String(),
			Available: !isTaken(slot, bookings, serviceMin),
		})
	}
	return out
}

// IsSlotAvailable is the authoritative single-slot check used right
// before persisting a booking. It returns ErrInvalidTimeOfDay when at is
// not on the bookable grid for the day, and false when an active booking
// already overlaps it. Callers must run it inside the same transaction
// that inserts the booking; the function itself takes no locks.
func IsSlotAvailable(wh WorkingHours, intervalMin, serviceMin int, at TimeOfDay, bookings []Booking) (bool, error) {
	grid, err := BookableSlots(wh, intervalMin, serviceMin)
	if err != nil {
		return false, err
	}

	onGrid := false
	for _, slot := range grid {
		if slot == at {
			onGrid = true
			break
		}
	}
	if !onGrid {
		return false, ErrInvalidTimeOfDay
	}

	return !isTaken(at, bookings, serviceMin), nil
}

func isTaken(slot TimeOfDay, bookings []Booking, serviceMin int) bool {
	for _, b := range bookings {
		if !b.Status.OccupiesSlot() {
			continue
		}
		if overlaps(slot, slot.Add(serviceMin), b.Start, b.Start.Add(b.DurationMin)) {
			return true
		}
	}
	return false
}

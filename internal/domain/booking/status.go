package booking

import "github.com/sharpfade/barbershop-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Active statuses occupy their time slot; cancelled and completed do not
// block new bookings.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transitions
// ===============================

// CanConfirm: staff approval of a client-made booking.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: pending and confirmed bookings may be cancelled. Cancelled
// rows are kept for history, never deleted.
func CanCancel(current Status) error {
	if !current.Active() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: only confirmed bookings are completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus depends on who books: the public flow starts pending and
// waits for staff confirmation, staff-created bookings start confirmed.
func InitialStatus(staffCreated bool) Status {
	if staffCreated {
		return StatusConfirmed
	}
	return StatusPending
}

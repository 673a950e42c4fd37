package booking

import (
	"context"
	"time"

	"github.com/sharpfade/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create) --------

	// CreateBookingIfFree re-checks for overlapping active bookings and
	// inserts inside a single transaction, with the conflict scan locked
	// FOR UPDATE. A losing race surfaces as the slot_already_taken
	// business error, either from the scan or from the partial unique
	// index on insert.
	CreateBookingIfFree(
		ctx context.Context,
		bk *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForBarber(
		ctx context.Context,
		bookingID uint,
		barberID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	// ListActiveBookingsForDay returns pending and confirmed bookings
	// overlapping [start, end), ordered by start time.
	ListActiveBookingsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}

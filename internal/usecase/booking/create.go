package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/schedule"
	"github.com/sharpfade/barbershop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string

	// StaffCreated bookings skip the pending state.
	StaffCreated bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    AuditSink
	notifier Notifier
	slots    SlotCache
}

func NewCreateBooking(
	repo domain.Repository,
	auditSink AuditSink,
	notifier Notifier,
	slots SlotCache,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    auditSink,
		notifier: notifier,
		slots:    slots,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	at, err := schedule.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	loc := timezone.Location(shop.Timezone)
	start := date.At(at, loc)

	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(shop.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	svc, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	whRow, err := uc.repo.GetWorkingHours(ctx, in.BarberID, int(date.Weekday()))
	if err != nil {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	wh, err := workingHoursWindow(whRow)
	if err != nil {
		return nil, err
	}

	dayBookings, err := uc.repo.ListActiveBookingsForDay(
		ctx,
		in.BarberID,
		date.StartOfDay(loc),
		date.EndOfDay(loc),
	)
	if err != nil {
		return nil, err
	}

	free, err := schedule.IsSlotAvailable(
		wh,
		slotInterval(shop),
		svc.DurationMin,
		at,
		projectBookings(dayBookings, loc),
	)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidTimeOfDay) {
			return nil, httperr.ErrBusiness("outside_working_hours")
		}
		return nil, err
	}
	if !free {
		return nil, httperr.ErrBusiness("slot_already_taken")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	bk := &models.Booking{
		Reference:    uuid.NewString(),
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     client.ID,
		ServiceID:    svc.ID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus(in.StaffCreated)),
		Notes:        in.Notes,
	}

	// The pre-check above is advisory; the repository repeats it inside
	// the insert transaction, so a losing race comes back as
	// slot_already_taken here.
	if err := uc.repo.CreateBookingIfFree(ctx, bk); err != nil {
		return nil, err
	}

	if uc.slots != nil {
		uc.slots.InvalidateDay(ctx, in.BarberID, date.String())
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: in.BarbershopID,
			UserID:       &in.BarberID,
			Action:       "booking_created",
			Entity:       "booking",
			EntityID:     &bk.ID,
		})
	}

	if uc.notifier != nil && client.Email != "" {
		uc.notifier.BookingCreated(bk, shop, client, svc)
	}

	return bk, nil
}

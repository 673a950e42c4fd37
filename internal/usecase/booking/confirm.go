package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/schedule"
	"github.com/sharpfade/barbershop-api/internal/timezone"
)

type ConfirmBooking struct {
	repo     domain.Repository
	audit    AuditSink
	notifier Notifier
}

func NewConfirmBooking(
	repo domain.Repository,
	auditSink AuditSink,
	notifier Notifier,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:     repo,
		audit:    auditSink,
		notifier: notifier,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	bookingID uint,
) (*models.Booking, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	bk, err := uc.repo.GetBookingForBarber(ctx, bookingID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Confirm(bk, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: barbershopID,
			UserID:       &barberID,
			Action:       "booking_confirmed",
			Entity:       "booking",
			EntityID:     &bk.ID,
		})
	}

	if uc.notifier != nil {
		uc.notifier.BookingConfirmed(bk, shop)
	}

	return bk, nil
}

// bookingDate is the booking's calendar date in the shop's timezone, used
// as the availability cache invalidation key.
func bookingDate(bk *models.Booking, shop *models.Barbershop) string {
	loc := timezone.Location(shop.Timezone)
	return schedule.DateOf(bk.StartTime.In(loc)).String()
}

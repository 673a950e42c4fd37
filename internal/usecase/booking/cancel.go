package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/timezone"
)

type CancelBooking struct {
	repo     domain.Repository
	audit    AuditSink
	notifier Notifier
	slots    SlotCache
}

func NewCancelBooking(
	repo domain.Repository,
	auditSink AuditSink,
	notifier Notifier,
	slots SlotCache,
) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		audit:    auditSink,
		notifier: notifier,
		slots:    slots,
	}
}

func (uc *CancelBooking) Execute(
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
	if err := domain.Cancel(bk, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	// Cancelling frees the slot for other clients right away.
	if uc.slots != nil {
		uc.slots.InvalidateDay(ctx, barberID, bookingDate(bk, shop))
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: barbershopID,
			UserID:       &barberID,
			Action:       "booking_cancelled",
			Entity:       "booking",
			EntityID:     &bk.ID,
		})
	}

	if uc.notifier != nil {
		uc.notifier.BookingCancelled(bk, shop)
	}

	return bk, nil
}

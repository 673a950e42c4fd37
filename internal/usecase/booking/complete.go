package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit AuditSink
}

func NewCompleteBooking(
	repo domain.Repository,
	auditSink AuditSink,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: auditSink,
	}
}

func (uc *CompleteBooking) Execute(
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
	if err := domain.Complete(bk, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: barbershopID,
			UserID:       &barberID,
			Action:       "booking_completed",
			Entity:       "booking",
			EntityID:     &bk.ID,
		})
	}

	return bk, nil
}

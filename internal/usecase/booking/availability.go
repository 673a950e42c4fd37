package booking

import (
	"context"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/schedule"
	"github.com/sharpfade/barbershop-api/internal/timezone"
)

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint
	Date         schedule.Date
}

type GetAvailability struct {
	repo  domain.Repository
	slots SlotCache
}

func NewGetAvailability(repo domain.Repository, slots SlotCache) *GetAvailability {
	return &GetAvailability{repo: repo, slots: slots}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]schedule.SlotAvailability, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	whRow, err := uc.repo.GetWorkingHours(ctx, in.BarberID, int(in.Date.Weekday()))
	if err != nil {
		// Day off: an empty grid, not an error.
		return []schedule.SlotAvailability{}, nil
	}

	wh, err := workingHoursWindow(whRow)
	if err != nil {
		return []schedule.SlotAvailability{}, nil
	}

	if uc.slots != nil {
		if cached, ok := uc.slots.Get(ctx, in.BarberID, in.Date.String(), svc.ID); ok {
			return cached, nil
		}
	}

	loc := timezone.Location(shop.Timezone)

	dayBookings, err := uc.repo.ListActiveBookingsForDay(
		ctx,
		in.BarberID,
		in.Date.StartOfDay(loc),
		in.Date.EndOfDay(loc),
	)
	if err != nil {
		return nil, err
	}

	grid, err := schedule.BookableSlots(wh, slotInterval(shop), svc.DurationMin)
	if err != nil {
		return nil, err
	}

	annotated := schedule.AnnotateAvailability(
		grid,
		projectBookings(dayBookings, loc),
		svc.DurationMin,
	)

	if uc.slots != nil {
		uc.slots.Set(ctx, in.BarberID, in.Date.String(), svc.ID, annotated)
	}

	return annotated, nil
}

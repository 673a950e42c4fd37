package booking

import (
	"context"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/dto"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/schedule"
	"github.com/sharpfade/barbershop-api/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	barberID uint,
	barbershopID uint,
	date schedule.Date,
) ([]dto.BookingListDTO, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		barberID,
		date.StartOfDay(loc),
		date.EndOfDay(loc),
	)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          bk.ID,
			Reference:   bk.Reference,
			StartTime:   bk.StartTime,
			EndTime:     bk.EndTime,
			Status:      bk.Status,
			ClientName:  bk.Client.Name,
			ServiceName: bk.Service.Name,
		})
	}
	return out
}

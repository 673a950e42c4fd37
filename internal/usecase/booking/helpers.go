package booking

import (
	"context"
	"time"

	"github.com/sharpfade/barbershop-api/internal/audit"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/schedule"
)

const defaultSlotIntervalMin = 30

// AuditSink receives audit events; satisfied by audit.Dispatcher.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

// Notifier sends client-facing notifications; satisfied by mailer.Mailer.
type Notifier interface {
	BookingCreated(bk *models.Booking, shop *models.Barbershop, client *models.Client, svc *models.Service)
	BookingConfirmed(bk *models.Booking, shop *models.Barbershop)
	BookingCancelled(bk *models.Booking, shop *models.Barbershop)
}

// SlotCache caches annotated availability grids per barber/date/service;
// satisfied by cache.AvailabilityCache.
type SlotCache interface {
	Get(ctx context.Context, barberID uint, date string, serviceID uint) ([]schedule.SlotAvailability, bool)
	Set(ctx context.Context, barberID uint, date string, serviceID uint, slots []schedule.SlotAvailability)
	InvalidateDay(ctx context.Context, barberID uint, date string)
}

// workingHoursWindow converts a stored weekday row into the calculator's
// window. Inactive or incomplete rows mean the barber does not work that
// day.
func workingHoursWindow(wh *models.WorkingHours) (schedule.WorkingHours, error) {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return schedule.WorkingHours{}, httperr.ErrBusiness("outside_working_hours")
	}

	open, err := schedule.ParseTimeOfDay(wh.StartTime)
	if err != nil {
		return schedule.WorkingHours{}, err
	}
	close, err := schedule.ParseTimeOfDay(wh.EndTime)
	if err != nil {
		return schedule.WorkingHours{}, err
	}

	out := schedule.WorkingHours{Open: open, Close: close}

	if wh.LunchStart != "" && wh.LunchEnd != "" {
		ls, err := schedule.ParseTimeOfDay(wh.LunchStart)
		if err != nil {
			return schedule.WorkingHours{}, err
		}
		le, err := schedule.ParseTimeOfDay(wh.LunchEnd)
		if err != nil {
			return schedule.WorkingHours{}, err
		}
		out.LunchStart = ls
		out.LunchEnd = le
	}

	return out, nil
}

// projectBookings maps stored bookings onto the day's minute grid in the
// shop's location.
func projectBookings(bks []models.Booking, loc *time.Location) []schedule.Booking {
	out := make([]schedule.Booking, 0, len(bks))
	for _, bk := range bks {
		start := bk.StartTime.In(loc)
		out = append(out, schedule.Booking{
			Start:       schedule.TimeOfDay(start.Hour()*60 + start.Minute()),
			DurationMin: int(bk.EndTime.Sub(bk.StartTime).Minutes()),
			Status:      schedule.Status(bk.Status),
		})
	}
	return out
}

func slotInterval(shop *models.Barbershop) int {
	if shop.SlotIntervalMinutes > 0 {
		return shop.SlotIntervalMinutes
	}
	return defaultSlotIntervalMin
}

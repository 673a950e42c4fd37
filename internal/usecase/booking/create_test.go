package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	shop     models.Barbershop
	services map[uint]models.Service
	hours    map[int]models.WorkingHours
	bookings []models.Booking
	clients  []models.Client
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	r := &fakeRepo{
		shop: models.Barbershop{
			ID:                  1,
			Name:                "Test Cuts",
			Slug:                "test-cuts",
			Timezone:            "UTC",
			MinAdvanceMinutes:   120,
			SlotIntervalMinutes: 30,
		},
		services: map[uint]models.Service{
			10: {ID: 10, BarbershopID: 1, Name: "Haircut", DurationMin: 30, Active: true},
		},
		hours:  map[int]models.WorkingHours{},
		nextID: 1,
	}
	for wd := 0; wd < 7; wd++ {
		r.hours[wd] = models.WorkingHours{
			BarberID:  2,
			Weekday:   wd,
			StartTime: "09:00",
			EndTime:   "18:00",
			Active:    true,
		}
	}
	return r
}

func (r *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if id != r.shop.ID {
		return nil, gorm.ErrRecordNotFound
	}
	shop := r.shop
	return &shop, nil
}

func (r *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if slug != r.shop.Slug {
		return nil, gorm.ErrRecordNotFound
	}
	shop := r.shop
	return &shop, nil
}

func (r *fakeRepo) GetService(_ context.Context, _ uint, serviceID uint) (*models.Service, error) {
	svc, ok := r.services[serviceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &svc, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	for _, c := range r.clients {
		if c.Phone == phone {
			client := c
			return &client, nil
		}
	}
	client := models.Client{ID: r.nextID, BarbershopID: barbershopID, Name: name, Phone: phone, Email: email}
	r.nextID++
	r.clients = append(r.clients, client)
	return &client, nil
}

func (r *fakeRepo) CreateBookingIfFree(_ context.Context, bk *models.Booking) error {
	for _, existing := range r.bookings {
		if existing.BarberID != bk.BarberID || !domain.Status(existing.Status).Active() {
			continue
		}
		if bk.StartTime.Before(existing.EndTime) && existing.StartTime.Before(bk.EndTime) {
			return httperr.ErrBusiness("slot_already_taken")
		}
	}
	bk.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, *bk)
	return nil
}

func (r *fakeRepo) GetBookingForBarber(_ context.Context, bookingID, barberID uint) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == bookingID && r.bookings[i].BarberID == barberID {
			bk := r.bookings[i]
			return &bk, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateBooking(_ context.Context, bk *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == bk.ID {
			r.bookings[i] = *bk
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	wh, ok := r.hours[weekday]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &wh, nil
}

func (r *fakeRepo) ListActiveBookingsForDay(_ context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.BarberID != barberID || !domain.Status(bk.Status).Active() {
			continue
		}
		if bk.StartTime.Before(end) && start.Before(bk.EndTime) {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.BarberID == barberID && !bk.StartTime.Before(start) && bk.StartTime.Before(end) {
			out = append(out, bk)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

type recordingAudit struct {
	events []audit.Event
}

func (a *recordingAudit) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

// futureDate returns a date far enough ahead that the min-advance check
// never interferes.
func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func baseInput() CreateBookingInput {
	return CreateBookingInput{
		BarbershopID: 1,
		BarberID:     2,
		ClientName:   "John",
		ClientPhone:  "+5511999990000",
		ClientEmail:  "john@example.com",
		ServiceID:    10,
		Date:         futureDate(),
		Time:         "10:00",
	}
}

// ======================================================
// TESTS
// ======================================================

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepo()
	sink := &recordingAudit{}
	uc := NewCreateBooking(repo, sink, nil, nil)

	bk, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), bk.Status, "public bookings start pending")
	assert.NotEmpty(t, bk.Reference)
	assert.Equal(t, 30*time.Minute, bk.EndTime.Sub(bk.StartTime))
	require.Len(t, sink.events, 1)
	assert.Equal(t, "booking_created", sink.events[0].Action)
}

func TestCreateBookingStaffStartsConfirmed(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil, nil)

	in := baseInput()
	in.StaffCreated = true

	bk, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), bk.Status)
}

func TestCreateBookingConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	in := baseInput()
	in.ClientPhone = "+5511888880000"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_already_taken"))
}

func TestCreateBookingAdjacentSlotsDoNotConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	in := baseInput()
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err, "back-to-back bookings share a boundary, not time")
}

func TestCreateBookingCancelledFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateBooking(repo, nil, nil, nil)
	cancelUC := NewCancelBooking(repo, nil, nil, nil)

	bk, err := createUC.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), 1, 2, bk.ID)
	require.NoError(t, err)

	_, err = createUC.Execute(context.Background(), baseInput())
	assert.NoError(t, err, "a cancelled booking no longer blocks its slot")
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateBookingInput)
		wantCode string
	}{
		{
			name:     "malformed date",
			mutate:   func(in *CreateBookingInput) { in.Date = "15/07/2025" },
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "malformed time",
			mutate:   func(in *CreateBookingInput) { in.Time = "10h00" },
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "too soon",
			mutate:   func(in *CreateBookingInput) { in.Date = time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02") },
			wantCode: "too_soon",
		},
		{
			name:     "unknown service",
			mutate:   func(in *CreateBookingInput) { in.ServiceID = 99 },
			wantCode: "service_not_found",
		},
		{
			name:     "off the slot grid",
			mutate:   func(in *CreateBookingInput) { in.Time = "10:10" },
			wantCode: "outside_working_hours",
		},
		{
			name:     "before opening",
			mutate:   func(in *CreateBookingInput) { in.Time = "08:00" },
			wantCode: "outside_working_hours",
		},
		{
			name:     "would run past closing",
			mutate:   func(in *CreateBookingInput) { in.Time = "17:45" },
			wantCode: "outside_working_hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewCreateBooking(repo, nil, nil, nil)

			in := baseInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode),
				fmt.Sprintf("want business error %q, got %v", tt.wantCode, err))
		})
	}
}

func TestCreateBookingDayOff(t *testing.T) {
	repo := newFakeRepo()
	delete(repo.hours, int(mustParseDateWeekday(t, futureDate())))
	uc := NewCreateBooking(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

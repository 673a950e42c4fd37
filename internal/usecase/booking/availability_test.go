package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpfade/barbershop-api/internal/schedule"
)

func mustParseDateWeekday(t *testing.T, s string) time.Weekday {
	t.Helper()
	d, err := schedule.ParseDate(s)
	require.NoError(t, err)
	return d.Weekday()
}

// memorySlotCache is a map-backed SlotCache for tests.
type memorySlotCache struct {
	entries map[string][]schedule.SlotAvailability
	hits    int
}

func newMemorySlotCache() *memorySlotCache {
	return &memorySlotCache{entries: map[string][]schedule.SlotAvailability{}}
}

func (c *memorySlotCache) cacheKey(barberID uint, date string, serviceID uint) string {
	return date
}

func (c *memorySlotCache) Get(_ context.Context, barberID uint, date string, serviceID uint) ([]schedule.SlotAvailability, bool) {
	slots, ok := c.entries[c.cacheKey(barberID, date, serviceID)]
	if ok {
		c.hits++
	}
	return slots, ok
}

func (c *memorySlotCache) Set(_ context.Context, barberID uint, date string, serviceID uint, slots []schedule.SlotAvailability) {
	c.entries[c.cacheKey(barberID, date, serviceID)] = slots
}

func (c *memorySlotCache) InvalidateDay(_ context.Context, barberID uint, date string) {
	delete(c.entries, date)
}

func availabilityInput() AvailabilityInput {
	d, _ := schedule.ParseDate(futureDate())
	return AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		ServiceID:    10,
		Date:         d,
	}
}

func TestGetAvailabilityEmptyDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	// 09:00–18:00, 30-minute grid, 30-minute service.
	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "17:30", slots[len(slots)-1].Start)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGetAvailabilityMarksBookedSlots(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateBooking(repo, nil, nil, nil)
	availUC := NewGetAvailability(repo, nil)

	_, err := createUC.Execute(context.Background(), baseInput()) // 10:00
	require.NoError(t, err)

	slots, err := availUC.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	byStart := map[string]bool{}
	for _, s := range slots {
		byStart[s.Start] = s.Available
	}

	assert.False(t, byStart["10:00"])
	assert.True(t, byStart["09:30"])
	assert.True(t, byStart["10:30"])
}

func TestGetAvailabilityDayOff(t *testing.T) {
	repo := newFakeRepo()
	in := availabilityInput()
	delete(repo.hours, int(in.Date.Weekday()))

	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityUsesCache(t *testing.T) {
	repo := newFakeRepo()
	slotCache := newMemorySlotCache()
	uc := NewGetAvailability(repo, slotCache)

	in := availabilityInput()

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, slotCache.hits)

	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, slotCache.hits)
	assert.Equal(t, first, second)
}

func TestCreateBookingInvalidatesCache(t *testing.T) {
	repo := newFakeRepo()
	slotCache := newMemorySlotCache()
	createUC := NewCreateBooking(repo, nil, nil, slotCache)
	availUC := NewGetAvailability(repo, slotCache)

	in := availabilityInput()

	_, err := availUC.Execute(context.Background(), in)
	require.NoError(t, err)

	_, err = createUC.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	slots, err := availUC.Execute(context.Background(), in)
	require.NoError(t, err)

	byStart := map[string]bool{}
	for _, s := range slots {
		byStart[s.Start] = s.Available
	}
	assert.False(t, byStart["10:00"], "stale cached grid must be dropped after booking")
}

package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
)

func newBooking(s Status) *models.Booking {
	return &models.Booking{Status: string(s)}
}

func TestTransitionsFromPending(t *testing.T) {
	now := time.Now()

	bk := newBooking(StatusPending)
	require.NoError(t, Confirm(bk, now))
	assert.Equal(t, string(StatusConfirmed), bk.Status)
	require.NotNil(t, bk.ConfirmedAt)

	bk = newBooking(StatusPending)
	require.NoError(t, Cancel(bk, now))
	assert.Equal(t, string(StatusCancelled), bk.Status)
	require.NotNil(t, bk.CancelledAt)

	bk = newBooking(StatusPending)
	err := Complete(bk, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"), "pending bookings are not completable")
}

func TestTransitionsFromConfirmed(t *testing.T) {
	now := time.Now()

	bk := newBooking(StatusConfirmed)
	require.NoError(t, Complete(bk, now))
	assert.Equal(t, string(StatusCompleted), bk.Status)
	require.NotNil(t, bk.CompletedAt)

	bk = newBooking(StatusConfirmed)
	require.NoError(t, Cancel(bk, now))
	assert.Equal(t, string(StatusCancelled), bk.Status)

	bk = newBooking(StatusConfirmed)
	err := Confirm(bk, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTerminalStates(t *testing.T) {
	now := time.Now()

	for _, terminal := range []Status{StatusCancelled, StatusCompleted} {
		bk := newBooking(terminal)
		assert.Error(t, Confirm(bk, now))
		assert.Error(t, Cancel(bk, now))
		assert.Error(t, Complete(bk, now))
		assert.Equal(t, string(terminal), bk.Status, "terminal status must not change")
	}
}

func TestActive(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusConfirmed.Active())
	assert.False(t, StatusCancelled.Active())
	assert.False(t, StatusCompleted.Active())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus(true))
	assert.Equal(t, StatusPending, InitialStatus(false))
}

package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpfade/barbershop-api/internal/httperr"
)

func TestCreateBookingErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_active_slot"}

	err := createBookingError(pgErr)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_already_taken"))
}

func TestCreateBookingErrorWrappedUniqueViolation(t *testing.T) {
	// GORM and the transaction helper wrap driver errors before they
	// reach the caller; the translation has to see through the layers.
	wrapped := fmt.Errorf("insert booking: %w",
		fmt.Errorf("tx: %w", &pgconn.PgError{Code: "23505"}))

	err := createBookingError(wrapped)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_already_taken"))
}

func TestCreateBookingErrorPassthrough(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}},
		{name: "plain error", err: errors.New("connection refused")},
		{name: "business error from the pre-check", err: httperr.ErrBusiness("slot_already_taken")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.err, createBookingError(tt.err))
		})
	}
}

func TestCreateBookingErrorNil(t *testing.T) {
	assert.NoError(t, createBookingError(nil))
}

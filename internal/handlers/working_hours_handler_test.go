package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWorkingDay(t *testing.T) {
	tests := []struct {
		name    string
		day     WorkingDayConfig
		wantErr bool
	}{
		{
			name: "plain day",
			day:  WorkingDayConfig{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "18:00"},
		},
		{
			name: "day with lunch",
			day: WorkingDayConfig{
				Weekday: 2, Active: true,
				StartTime: "09:00", EndTime: "18:00",
				LunchStart: "12:00", LunchEnd: "13:00",
			},
		},
		{
			name: "inactive day skips validation",
			day:  WorkingDayConfig{Weekday: 0, Active: false},
		},
		{
			name:    "missing end time",
			day:     WorkingDayConfig{Weekday: 1, Active: true, StartTime: "09:00"},
			wantErr: true,
		},
		{
			name:    "end before start",
			day:     WorkingDayConfig{Weekday: 1, Active: true, StartTime: "18:00", EndTime: "09:00"},
			wantErr: true,
		},
		{
			name:    "single-digit hour rejected",
			day:     WorkingDayConfig{Weekday: 1, Active: true, StartTime: "9:00", EndTime: "18:00"},
			wantErr: true,
		},
		{
			name: "lunch start without end",
			day: WorkingDayConfig{
				Weekday: 1, Active: true,
				StartTime: "09:00", EndTime: "18:00",
				LunchStart: "12:00",
			},
			wantErr: true,
		},
		{
			name: "lunch outside window",
			day: WorkingDayConfig{
				Weekday: 1, Active: true,
				StartTime: "09:00", EndTime: "18:00",
				LunchStart: "08:00", LunchEnd: "09:30",
			},
			wantErr: true,
		},
		{
			name: "inverted lunch",
			day: WorkingDayConfig{
				Weekday: 1, Active: true,
				StartTime: "09:00", EndTime: "18:00",
				LunchStart: "13:00", LunchEnd: "12:00",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWorkingDay(tt.day)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOrderCanTransition(t *testing.T) {
	assert.True(t, orderCanTransition("pending_payment", "paid"))
	assert.True(t, orderCanTransition("pending_payment", "cancelled"))
	assert.True(t, orderCanTransition("paid", "fulfilled"))
	assert.True(t, orderCanTransition("paid", "cancelled"))

	assert.False(t, orderCanTransition("pending_payment", "fulfilled"))
	assert.False(t, orderCanTransition("fulfilled", "paid"))
	assert.False(t, orderCanTransition("cancelled", "paid"))
	assert.False(t, orderCanTransition("paid", "pending_payment"))
}

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func strs(slots []TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestBookableSlots(t *testing.T) {
	tests := []struct {
		name       string
		open       string
		close      string
		lunch      [2]string
		intervalMin int
		serviceMin  int
		want        []string
	}{
		{
			name:        "morning grid, service equals interval",
			open:        "09:00",
			close:       "12:00",
			intervalMin: 30,
			serviceMin:  30,
			want:        []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:        "long service trims the tail",
			open:        "09:00",
			close:       "12:00",
			intervalMin: 30,
			serviceMin:  90,
			want:        []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:        "window not a multiple of the interval",
			open:        "09:00",
			close:       "10:50",
			intervalMin: 30,
			serviceMin:  30,
			want:        []string{"09:00", "09:30", "10:00"},
		},
		{
			name:        "lunch break removes midday slots",
			open:        "09:00",
			close:       "15:00",
			lunch:       [2]string{"12:00", "13:00"},
			intervalMin: 60,
			serviceMin:  60,
			want:        []string{"09:00", "10:00", "11:00", "13:00", "14:00"},
		},
		{
			name:        "service spilling into lunch is excluded",
			open:        "09:00",
			close:       "15:00",
			lunch:       [2]string{"12:00", "13:00"},
			intervalMin: 30,
			serviceMin:  60,
			want:        []string{"09:00", "09:30", "10:00", "10:30", "11:00", "13:00", "13:30", "14:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wh := WorkingHours{
				Open:  mustTime(t, tt.open),
				Close: mustTime(t, tt.close),
			}
			if tt.lunch[0] != "" {
				wh.LunchStart = mustTime(t, tt.lunch[0])
				wh.LunchEnd = mustTime(t, tt.lunch[1])
			}

			slots, err := BookableSlots(wh, tt.intervalMin, tt.serviceMin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strs(slots))
		})
	}
}

func TestBookableSlotsBoundary(t *testing.T) {
	wh := WorkingHours{Open: mustTime(t, "09:00"), Close: mustTime(t, "12:00")}

	// A slot starting exactly at close - service must be emitted; the one
	// interval later must not.
	slots, err := BookableSlots(wh, 30, 30)
	require.NoError(t, err)
	last := slots[len(slots)-1]
	assert.Equal(t, "11:30", last.String())
	assert.Equal(t, wh.Close, last.Add(30))
}

func TestGenerateSlotsProperties(t *testing.T) {
	wh := WorkingHours{Open: mustTime(t, "08:00"), Close: mustTime(t, "18:00")}

	first, err := GenerateSlots(wh, 45)
	require.NoError(t, err)
	second, err := GenerateSlots(wh, 45)
	require.NoError(t, err)

	assert.Equal(t, first, second, "no hidden state between calls")

	require.NotEmpty(t, first)
	assert.Equal(t, wh.Open, first[0])
	for i := 1; i < len(first); i++ {
		assert.Equal(t, 45, first[i].Minutes()-first[i-1].Minutes(), "strictly increasing by the interval")
	}
	assert.LessOrEqual(t, first[len(first)-1].Add(45), wh.Close, "no partial trailing slot")
}

func TestSlotInputValidation(t *testing.T) {
	wh := WorkingHours{Open: mustTime(t, "09:00"), Close: mustTime(t, "12:00")}

	_, err := GenerateSlots(wh, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = GenerateSlots(wh, -15)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = BookableSlots(wh, 30, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	inverted := WorkingHours{Open: mustTime(t, "12:00"), Close: mustTime(t, "09:00")}
	_, err = GenerateSlots(inverted, 30)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "23:59", want: 1439},
		{in: "12:30", want: 750},
		{in: "24:00", wantErr: ErrInvalidFormat},
		{in: "09:60", wantErr: ErrInvalidFormat},
		{in: "9:00", wantErr: ErrInvalidFormat},
		{in: "09-00", wantErr: ErrInvalidFormat},
		{in: "0900", wantErr: ErrInvalidFormat},
		{in: "ab:cd", wantErr: ErrInvalidFormat},
		{in: "", wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{545, "09:05"},
		{1439, "23:59"},
	}

	for _, tt := range tests {
		tod, err := NewTimeOfDay(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tod.String())
	}
}

func TestNewTimeOfDayRange(t *testing.T) {
	_, err := NewTimeOfDay(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewTimeOfDay(1440)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewTimeOfDay(1439)
	assert.NoError(t, err)
}

func TestParseFormatRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m += 7 {
		tod := TimeOfDay(m)
		parsed, err := ParseTimeOfDay(tod.String())
		require.NoError(t, err)
		assert.Equal(t, tod, parsed)
	}
}

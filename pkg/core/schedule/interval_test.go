package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShiftTime_Valid(t *testing.T) {
	start, end, err := ParseShiftTime("08:00 - 16:30")

	require.NoError(t, err)
	assert.Equal(t, Clock(8, 0), start)
	assert.Equal(t, Clock(16, 30), end)
}

func TestParseShiftTime_SingleDigitHour(t *testing.T) {
	start, end, err := ParseShiftTime("8:15 - 9:45")

	require.NoError(t, err)
	assert.Equal(t, Clock(8, 15), start)
	assert.Equal(t, Clock(9, 45), end)
}

func TestParseShiftTime_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no separator", "08:00-16:00"},
		{"three parts", "08:00 - 12:00 - 16:00"},
		{"bad start", "8am - 16:00"},
		{"bad end", "08:00 - 25:00"},
		{"minutes out of range", "08:61 - 16:00"},
		{"missing end", "08:00 - "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseShiftTime(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedShiftTime)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0, 0).String())
	assert.Equal(t, "09:05", Clock(9, 5).String())
	assert.Equal(t, "23:59", Clock(23, 59).String())
	assert.Equal(t, "25:00", Clock(20, 0).Add(5*time.Hour).String())
}

func TestTimeOfDay_Arithmetic(t *testing.T) {
	start := Clock(8, 0)
	end := Clock(16, 0)

	assert.Equal(t, 8*time.Hour, end.Sub(start))
	assert.True(t, start.Before(end))
	assert.True(t, end.After(start))
	assert.False(t, start.Before(start))
	assert.Equal(t, Clock(9, 30), start.Add(90*time.Minute))
}

package schedule

import (
	"fmt"
	"strings"
	"time"
)

// ShiftTimeSeparator separates start and end in a shift time string ("08:00 - 16:00")
const ShiftTimeSeparator = " - "

const clockLayout = "15:04"

// TimeOfDay is a wall-clock time expressed as the offset from midnight
type TimeOfDay time.Duration

// Clock builds a TimeOfDay from hours and minutes
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// ParseClock parses an "HH:MM" string
func ParseClock(s string) (TimeOfDay, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid HH:MM time", ErrMalformedShiftTime, s)
	}
	return Clock(t.Hour(), t.Minute()), nil
}

// ParseShiftTime splits a shift time string of the form "HH:MM - HH:MM" into its start and end.
// It does not check that start is before end.
func ParseShiftTime(s string) (start, end TimeOfDay, err error) {
	parts := strings.Split(s, ShiftTimeSeparator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q does not match \"HH:MM - HH:MM\"", ErrMalformedShiftTime, s)
	}

	start, err = ParseClock(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseClock(parts[1])
	if err != nil {
		return 0, 0, err
	}

	return start, end, nil
}

// Add returns t shifted by d
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d)
}

// Sub returns the duration t-u
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(t - u)
}

// Before reports whether t is strictly earlier than u
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t < u
}

// After reports whether t is strictly later than u
func (t TimeOfDay) After(u TimeOfDay) bool {
	return t > u
}

// Duration returns the offset from midnight
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

// String formats t as "HH:MM". Values past midnight keep counting hours (e.g. "25:00"),
// which only happens for lunch windows pushed beyond the end of a late shift.
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedShiftTime is returned when a shift time is not two "HH:MM" values joined by " - "
	ErrMalformedShiftTime = errors.New("malformed shift time")
	// ErrInvalidDateFormat is returned when a shift date is not an ISO "YYYY-MM-DD" date
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrInvalidTimeRange is returned when a shift does not end strictly after it starts
	ErrInvalidTimeRange = errors.New("invalid time range")
	// ErrConfigurationMissing is returned when lunch policy or the employee directory is absent
	ErrConfigurationMissing = errors.New("configuration missing")
)

// RowError reports a row that could not be turned into a ShiftRecord
type RowError struct {
	Source string   // Where the row came from, e.g. an input file name
	Index  int      // Position of the row within its source (0-based)
	Row    RawShift // Original row contents
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d %v: %v", e.Source, e.Index, e.Row.Values(), e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
)

// ErrDateNotFound is returned when no loaded shift falls on the requested date
var ErrDateNotFound = errors.New("no shifts on date")

// PreviewDay assembles the schedule of a single date from the loaded shifts
func PreviewDay(load *LoadResult, date time.Time) (schedule.DaySchedule, error) {
	if load == nil || load.Dates == nil || !load.Dates.Contains(date) {
		return schedule.DaySchedule{}, fmt.Errorf("%w: %s", ErrDateNotFound, date.Format(schedule.DateLayout))
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	var records []*schedule.ShiftRecord
	for _, rec := range load.Records {
		if rec.Date().Equal(day) {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return schedule.DaySchedule{}, fmt.Errorf("%w: %s", ErrDateNotFound, date.Format(schedule.DateLayout))
	}

	return schedule.AssembleDay(day, records), nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
)

// ErrNoShifts is returned when there is nothing to build schedules from
var ErrNoShifts = errors.New("no valid shifts found")

// SheetWriter renders one week as a workbook
type SheetWriter interface {
	WriteWeek(week schedule.WeekSchedule) ([]byte, error)
}

// OutputFile is a rendered workbook
type OutputFile struct {
	Name    string
	Content []byte
}

// GenerateResult contains the rendered workbooks in week order
type GenerateResult struct {
	Files    []OutputFile
	Weeks    []schedule.WeekSchedule
	Days     int
	Failures int // Rejected input rows
}

const maxConcurrentWeeks = 4

// GenerateSchedules assembles the loaded shifts into weeks and renders each week with writer
func GenerateSchedules(ctx context.Context, load *LoadResult, writer SheetWriter, logger *zap.Logger) (*GenerateResult, error) {
	if load == nil || len(load.Records) == 0 {
		return nil, ErrNoShifts
	}

	weeks := schedule.Assemble(load.Records, load.Dates)
	if len(weeks) == 0 {
		return nil, ErrNoShifts
	}

	withYear := spansYears(weeks)
	result := &GenerateResult{
		Files:    make([]OutputFile, len(weeks)),
		Weeks:    weeks,
		Failures: len(load.Failures),
	}

	errs := make([]error, len(weeks))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentWeeks)

	for i, week := range weeks {
		result.Days += len(week.Days)

		wg.Add(1)
		go func(i int, week schedule.WeekSchedule) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			defer func() { <-semaphore }()

			name := WeekFileName(week.Key, withYear)
			logger.Debug("Rendering week", zap.String("week", week.Key.String()), zap.Int("days", len(week.Days)))

			content, err := writer.WriteWeek(week)
			if err != nil {
				errs[i] = fmt.Errorf("failed to render %s: %w", name, err)
				return
			}
			result.Files[i] = OutputFile{Name: name, Content: content}
		}(i, week)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	logger.Info("Schedules created",
		zap.Int("weeks", len(weeks)),
		zap.Int("days", result.Days),
		zap.Int("failures", result.Failures))

	return result, nil
}

// WeekFileName names the workbook of a week, "Vecka 10.xlsx". The ISO year is prepended when a
// run covers weeks of more than one year so names cannot collide.
func WeekFileName(key schedule.WeekKey, withYear bool) string {
	if withYear {
		return fmt.Sprintf("%d Vecka %d.xlsx", key.Year, key.Week)
	}
	return fmt.Sprintf("Vecka %d.xlsx", key.Week)
}

func spansYears(weeks []schedule.WeekSchedule) bool {
	for _, w := range weeks[1:] {
		if w.Key.Year != weeks[0].Key.Year {
			return true
		}
	}
	return false
}

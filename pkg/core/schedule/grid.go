package schedule

import (
	"time"
)

// SlotWidth is the width of every slot except possibly the last one of a day
const SlotWidth = time.Hour

// Slot is the half-open interval [Start, End) of one grid column
type Slot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Label returns the column heading, e.g. "08:00-09:00"
func (s Slot) Label() string {
	return s.Start.String() + "-" + s.End.String()
}

// Probe returns the instant used to test a shift against this slot
func (s Slot) Probe() TimeOfDay {
	return s.Start
}

// DayGrid is the slot layout for one date
type DayGrid struct {
	Date          time.Time
	EarliestStart TimeOfDay
	LatestEnd     TimeOfDay
	Slots         []Slot
}

// Probes returns the probe instant of every slot, in grid order
func (g DayGrid) Probes() []TimeOfDay {
	probes := make([]TimeOfDay, len(g.Slots))
	for i, s := range g.Slots {
		probes[i] = s.Probe()
	}
	return probes
}

// Labels returns the label of every slot, in grid order
func (g DayGrid) Labels() []string {
	labels := make([]string, len(g.Slots))
	for i, s := range g.Slots {
		labels[i] = s.Label()
	}
	return labels
}

// BuildDayGrid spans the earliest start to the latest end of records with one-hour slots.
// The last slot is clipped to end exactly at the latest end.
func BuildDayGrid(date time.Time, records []*ShiftRecord) DayGrid {
	grid := DayGrid{Date: truncateDate(date)}
	if len(records) == 0 {
		return grid
	}

	grid.EarliestStart = records[0].Start()
	grid.LatestEnd = records[0].End()
	for _, rec := range records[1:] {
		if rec.Start().Before(grid.EarliestStart) {
			grid.EarliestStart = rec.Start()
		}
		if rec.End().After(grid.LatestEnd) {
			grid.LatestEnd = rec.End()
		}
	}

	for start := grid.EarliestStart; start.Before(grid.LatestEnd); {
		end := start.Add(SlotWidth)
		if end.After(grid.LatestEnd) {
			end = grid.LatestEnd
		}
		grid.Slots = append(grid.Slots, Slot{Start: start, End: end})
		start = end
	}

	return grid
}

package schedule

import (
	"cmp"
	"slices"
	"time"
)

// HideBefore is the first time of day shown in a schedule. Leading slots starting earlier are
// dropped from the output; the hours they cover still count towards totals.
const HideBefore = TimeOfDay(10 * time.Hour)

// Column headings preceding the slot labels
const (
	HeaderShiftTime = "Arbetstid"
	HeaderName      = "Namn"
	HeaderPhone     = "Tele"
)

// FixedColumns is the number of columns before the first slot column
const FixedColumns = 3

// Row is one employee line of a day schedule
type Row struct {
	Record       *ShiftRecord
	ShiftTime    string
	EmployeeName string
	Phone        string
	Statuses     []SlotStatus // Visible slots only
	Total        time.Duration
}

// Labels returns the cell text of every visible slot
func (r Row) Labels() []string {
	labels := make([]string, len(r.Statuses))
	for i, s := range r.Statuses {
		labels[i] = s.Label()
	}
	return labels
}

// Cells returns the full row: shift time, name, phone, slot labels and total
func (r Row) Cells() []any {
	cells := make([]any, 0, FixedColumns+len(r.Statuses)+1)
	cells = append(cells, r.ShiftTime, r.EmployeeName, r.Phone)
	for _, l := range r.Labels() {
		cells = append(cells, l)
	}
	return append(cells, r.Total)
}

// DaySchedule is everything a writer needs to render one date
type DaySchedule struct {
	Date        time.Time
	Title       string // e.g. "Monday - 2024-03-04"
	Grid        DayGrid
	HiddenSlots int      // Leading grid slots dropped by HideBefore
	Headers     []string // Fixed headings followed by visible slot labels
	Rows        []Row
	Total       time.Duration // Sum of row totals
}

// Weekday returns the English weekday name of the date
func (d DaySchedule) Weekday() string {
	return d.Date.Weekday().String()
}

// DateString returns the date as YYYY-MM-DD
func (d DaySchedule) DateString() string {
	return d.Date.Format(DateLayout)
}

// VisibleSlots returns the grid slots that survive HideBefore
func (d DaySchedule) VisibleSlots() []Slot {
	return d.Grid.Slots[d.HiddenSlots:]
}

// TotalColumn returns the 1-based column holding row totals and the day's aggregate
func (d DaySchedule) TotalColumn() int {
	return len(d.Headers) + 1
}

// WeekSchedule holds the day schedules of one ISO week in date order
type WeekSchedule struct {
	Key  WeekKey
	Days []DaySchedule
}

// Assemble builds the schedule of every week and date in dates from records
func Assemble(records []*ShiftRecord, dates *DateSet) []WeekSchedule {
	weeks := []WeekSchedule{}
	if dates == nil {
		return weeks
	}

	byDate := make(map[time.Time][]*ShiftRecord)
	for _, rec := range records {
		byDate[rec.Date()] = append(byDate[rec.Date()], rec)
	}

	for _, bucket := range GroupByWeek(dates.Sorted()) {
		week := WeekSchedule{Key: bucket.Key}
		for _, date := range bucket.Dates {
			dayRecords := byDate[date]
			if len(dayRecords) == 0 {
				continue
			}
			week.Days = append(week.Days, AssembleDay(date, dayRecords))
		}
		if len(week.Days) > 0 {
			weeks = append(weeks, week)
		}
	}

	return weeks
}

// AssembleDay builds the schedule of a single date from that date's records
func AssembleDay(date time.Time, records []*ShiftRecord) DaySchedule {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b *ShiftRecord) int {
		return cmp.Compare(a.Start(), b.Start())
	})

	grid := BuildDayGrid(date, sorted)
	hidden := hiddenSlotCount(grid)

	day := DaySchedule{
		Date:        grid.Date,
		Title:       grid.Date.Weekday().String() + " - " + grid.Date.Format(DateLayout),
		Grid:        grid,
		HiddenSlots: hidden,
		Headers:     append([]string{HeaderShiftTime, HeaderName, HeaderPhone}, grid.Labels()[hidden:]...),
		Rows:        make([]Row, 0, len(sorted)),
	}

	probes := grid.Probes()
	for _, rec := range sorted {
		statuses := MapSlots(rec, probes)
		day.Rows = append(day.Rows, Row{
			Record:       rec,
			ShiftTime:    rec.ShiftTime(),
			EmployeeName: rec.EmployeeName(),
			Phone:        rec.Phone(),
			Statuses:     statuses[hidden:],
			Total:        rec.Total(),
		})
		day.Total += rec.Total()
	}

	return day
}

func hiddenSlotCount(grid DayGrid) int {
	n := 0
	for _, s := range grid.Slots {
		if !s.Probe().Before(HideBefore) {
			break
		}
		n++
	}
	return n
}

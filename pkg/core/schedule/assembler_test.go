package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAll(t *testing.T, rows []RawShift) ([]*ShiftRecord, *DateSet) {
	t.Helper()
	dates := NewDateSet()
	builder, err := NewRecordBuilder(testPolicy(), dates)
	require.NoError(t, err)
	records, failures := ReadRecords("test", rows, builder)
	require.Empty(t, failures)
	return records, dates
}

func TestAssembleDay_Scenario(t *testing.T) {
	first := mustRecord(t, "101", "2024-03-04", "08:00 - 16:00")
	second := mustRecord(t, "102", "2024-03-04", "09:00 - 13:00")

	assert.Equal(t, 7*time.Hour, first.Total())
	assert.Equal(t, 4*time.Hour, second.Total())

	day := AssembleDay(date("2024-03-04"), []*ShiftRecord{second, first})

	require.Len(t, day.Grid.Slots, 8)
	assert.Equal(t, Clock(8, 0), day.Grid.EarliestStart)
	assert.Equal(t, Clock(16, 0), day.Grid.LatestEnd)

	// Probe 12:00 is the 5th grid slot
	full := MapSlots(first, day.Grid.Probes())
	assert.Equal(t, "Lunch", full[4].Label())
	full = MapSlots(second, day.Grid.Probes())
	assert.Equal(t, "Lager", full[4].Label())

	assert.Equal(t, "Monday - 2024-03-04", day.Title)
	assert.Equal(t, "Monday", day.Weekday())
	assert.Equal(t, 11*time.Hour, day.Total)
}

func TestAssembleDay_SortsByStartStable(t *testing.T) {
	a := mustRecord(t, "101", "2024-03-04", "10:00 - 12:00")
	b := mustRecord(t, "102", "2024-03-04", "08:00 - 12:00")
	c := mustRecord(t, "103", "2024-03-04", "10:00 - 11:00")

	day := AssembleDay(date("2024-03-04"), []*ShiftRecord{a, b, c})

	require.Len(t, day.Rows, 3)
	assert.Equal(t, "102", day.Rows[0].Record.EmployeeID())
	assert.Equal(t, "101", day.Rows[1].Record.EmployeeID())
	assert.Equal(t, "103", day.Rows[2].Record.EmployeeID())
}

func TestAssembleDay_HidesSlotsBeforeTen(t *testing.T) {
	first := mustRecord(t, "101", "2024-03-04", "08:00 - 16:00")
	second := mustRecord(t, "102", "2024-03-04", "09:00 - 13:00")

	day := AssembleDay(date("2024-03-04"), []*ShiftRecord{first, second})

	assert.Equal(t, 2, day.HiddenSlots)
	assert.Equal(t, []string{
		"Arbetstid", "Namn", "Tele",
		"10:00-11:00", "11:00-12:00", "12:00-13:00", "13:00-14:00", "14:00-15:00", "15:00-16:00",
	}, day.Headers)
	assert.Equal(t, 10, day.TotalColumn())
	assert.Len(t, day.VisibleSlots(), 6)

	row := day.Rows[0]
	assert.Equal(t, []string{"Kassa", "Kassa", "Lunch", "Kassa", "Kassa", "Kassa"}, row.Labels())
	// Hidden hours still count
	assert.Equal(t, 7*time.Hour, row.Total)

	cells := row.Cells()
	require.Len(t, cells, day.TotalColumn())
	assert.Equal(t, "08:00 - 16:00", cells[0])
	assert.Equal(t, "Anna Svensson", cells[1])
	assert.Equal(t, "070-111", cells[2])
	assert.Equal(t, 7*time.Hour, cells[len(cells)-1])

	assert.Equal(t, []string{"Lager", "Lager", "Lager", "FREE", "FREE", "FREE"}, day.Rows[1].Labels())
}

func TestAssembleDay_OffsetGridHidesOnlyEarlyProbes(t *testing.T) {
	rec := mustRecord(t, "101", "2024-03-04", "09:30 - 12:00")

	day := AssembleDay(date("2024-03-04"), []*ShiftRecord{rec})

	// 09:30 is hidden; 10:30 and 11:30 remain
	assert.Equal(t, 1, day.HiddenSlots)
	assert.Equal(t, []string{"10:30-11:30", "11:30-12:00"}, day.Headers[FixedColumns:])
}

func TestAssembleDay_AllSlotsHidden(t *testing.T) {
	rec := mustRecord(t, "101", "2024-03-04", "06:00 - 09:00")

	day := AssembleDay(date("2024-03-04"), []*ShiftRecord{rec})

	assert.Equal(t, 3, day.HiddenSlots)
	assert.Equal(t, []string{"Arbetstid", "Namn", "Tele"}, day.Headers)
	assert.Empty(t, day.Rows[0].Statuses)
	assert.Equal(t, 3*time.Hour, day.Total)
}

func TestAssemble_GroupsWeeksAndDays(t *testing.T) {
	records, dates := buildAll(t, []RawShift{
		raw("101", "2024-03-12", "10:00 - 18:00"),
		raw("101", "2024-03-04", "08:00 - 16:00"),
		raw("102", "2024-03-04", "09:00 - 13:00"),
		raw("102", "2024-03-05", "12:00 - 20:00"),
	})

	weeks := Assemble(records, dates)

	require.Len(t, weeks, 2)
	assert.Equal(t, WeekKey{Year: 2024, Week: 10}, weeks[0].Key)
	require.Len(t, weeks[0].Days, 2)
	assert.Equal(t, "2024-03-04", weeks[0].Days[0].DateString())
	assert.Len(t, weeks[0].Days[0].Rows, 2)
	assert.Equal(t, "2024-03-05", weeks[0].Days[1].DateString())
	assert.Equal(t, WeekKey{Year: 2024, Week: 11}, weeks[1].Key)
	assert.Equal(t, "Tuesday", weeks[1].Days[0].Weekday())
}

func TestAssemble_DayTotalMatchesRows(t *testing.T) {
	records, dates := buildAll(t, []RawShift{
		raw("101", "2024-03-04", "08:00 - 16:00"),
		raw("102", "2024-03-04", "09:00 - 13:00"),
		raw("103", "2024-03-04", "11:15 - 20:45"),
		raw("104", "2024-03-04", "06:00 - 10:00"),
	})

	weeks := Assemble(records, dates)
	require.Len(t, weeks, 1)
	day := weeks[0].Days[0]

	var sum time.Duration
	for _, row := range day.Rows {
		sum += row.Total
	}
	assert.Equal(t, sum, day.Total)
}

func TestAssemble_Empty(t *testing.T) {
	weeks := Assemble(nil, NewDateSet())
	assert.NotNil(t, weeks)
	assert.Empty(t, weeks)

	assert.Empty(t, Assemble(nil, nil))
}

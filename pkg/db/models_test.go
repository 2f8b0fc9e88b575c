package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
)

func TestShiftRowsFromRaw(t *testing.T) {
	raws := []schedule.RawShift{
		{EmployeeID: "101.0", LastName: "Svensson", FirstName: "Anna", Date: "2024-03-04", ShiftTime: "08:00 - 16:00"},
		{},
		{EmployeeID: "102", LastName: "Berg", FirstName: "Olle", Date: "2024-03-05", ShiftTime: "bad"},
	}

	rows := ShiftRowsFromRaw("imp-1", raws)

	assert.Len(t, rows, 2)
	assert.Equal(t, ShiftRow{
		ImportID: "imp-1", Position: 0, EmployeeID: "101", LastName: "Svensson", FirstName: "Anna",
		ShiftDate: "2024-03-04", ShiftTime: "08:00 - 16:00",
	}, rows[0])
	assert.Equal(t, 1, rows[1].Position)
	assert.Equal(t, "bad", rows[1].Raw().ShiftTime)
}

func TestShiftRow_RawRoundTrip(t *testing.T) {
	raw := schedule.RawShift{EmployeeID: "7", LastName: "Lind", FirstName: "Eva", Date: "2024-03-04", ShiftTime: "10:00 - 12:00"}

	rows := ShiftRowsFromRaw("imp", []schedule.RawShift{raw})

	assert.Equal(t, raw, rows[0].Raw())
}

func TestEmployeesToDirectory(t *testing.T) {
	dir := EmployeesToDirectory([]Employee{{ID: "101.0", Phone: "070-111", Role: "Kassa"}})

	c, ok := dir.Lookup("101")
	assert.True(t, ok)
	assert.Equal(t, "Kassa", c.Role)
}

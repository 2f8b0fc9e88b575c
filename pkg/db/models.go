package db

import (
	"time"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
)

// ShiftImport is one batch of shift rows loaded from a single source
type ShiftImport struct {
	ID         string
	Source     string
	ImportedAt time.Time
	RowCount   int
}

// ShiftRow is a stored input row. Fields are kept as read so they can be re-validated
// against the current lunch policy.
type ShiftRow struct {
	ImportID   string
	Position   int
	EmployeeID string
	LastName   string
	FirstName  string
	ShiftDate  string
	ShiftTime  string
}

// Raw converts the stored row back to builder input
func (r ShiftRow) Raw() schedule.RawShift {
	return schedule.RawShift{
		EmployeeID: r.EmployeeID,
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		Date:       r.ShiftDate,
		ShiftTime:  r.ShiftTime,
	}
}

// ShiftRowsFromRaw numbers raws for storage under importID, dropping blank rows
func ShiftRowsFromRaw(importID string, raws []schedule.RawShift) []ShiftRow {
	rows := make([]ShiftRow, 0, len(raws))
	for _, raw := range raws {
		if raw.IsBlank() {
			continue
		}
		rows = append(rows, ShiftRow{
			ImportID:   importID,
			Position:   len(rows),
			EmployeeID: schedule.NormalizeEmployeeID(raw.EmployeeID),
			LastName:   raw.LastName,
			FirstName:  raw.FirstName,
			ShiftDate:  raw.Date,
			ShiftTime:  raw.ShiftTime,
		})
	}
	return rows
}

// Employee is a stored directory entry
type Employee struct {
	ID    string
	Phone string
	Role  string
}

// EmployeesToDirectory builds a directory from stored employees
func EmployeesToDirectory(employees []Employee) schedule.StaticDirectory {
	dir := make(schedule.StaticDirectory, len(employees))
	for _, e := range employees {
		dir[schedule.NormalizeEmployeeID(e.ID)] = schedule.Contact{Phone: e.Phone, Role: e.Role}
	}
	return dir
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/db"
)

// mockSource implements RowSource
type mockSource struct {
	name string
	rows []schedule.RawShift
	err  error
}

func (m *mockSource) Name() string { return m.name }

func (m *mockSource) ReadRows(ctx context.Context) ([]schedule.RawShift, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

// mockWriter implements SheetWriter
type mockWriter struct {
	mu      sync.Mutex
	written []schedule.WeekKey
	failOn  map[schedule.WeekKey]bool
}

func (m *mockWriter) WriteWeek(week schedule.WeekSchedule) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn[week.Key] {
		return nil, errors.New("disk full")
	}
	m.written = append(m.written, week.Key)
	return []byte(fmt.Sprintf("%s:%d", week.Key, len(week.Days))), nil
}

// mockShiftStore implements ImportShiftsStore, EmployeeLister and EmployeeUpserter
type mockShiftStore struct {
	imports   []db.ShiftImport
	rows      map[string][]db.ShiftRow
	employees []db.Employee
	upserted  []db.Employee
	insertErr error
	getErr    error
}

func (m *mockShiftStore) InsertShiftImport(ctx context.Context, imp *db.ShiftImport, rows []db.ShiftRow) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if m.rows == nil {
		m.rows = make(map[string][]db.ShiftRow)
	}
	m.imports = append(m.imports, *imp)
	m.rows[imp.ID] = rows
	return nil
}

func (m *mockShiftStore) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.employees, nil
}

func (m *mockShiftStore) UpsertEmployees(ctx context.Context, employees []db.Employee) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.upserted = append(m.upserted, employees...)
	return nil
}

func testPolicy() schedule.Policy {
	return schedule.Policy{
		HoursForLunch: 5,
		LunchAfter:    4,
		Directory: schedule.StaticDirectory{
			"101": {Phone: "070-111", Role: "Kassa"},
			"102": {Phone: "070-222", Role: "Lager"},
		},
	}
}

func shift(id, date, time string) schedule.RawShift {
	return schedule.RawShift{EmployeeID: id, LastName: "Svensson", FirstName: "Anna", Date: date, ShiftTime: time}
}

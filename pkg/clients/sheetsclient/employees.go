package sheetsclient

import (
	"context"
	"fmt"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/sheetssql"
)

type employeeRow struct {
	ID    string `ssql_header:"id"`
	Phone string `ssql_header:"phone"`
	Role  string `ssql_header:"role"`
}

// EmployeeDirectory reads an id/phone/role table with a header row from the sheet
func EmployeeDirectory(ctx context.Context, reader ValueReader, spreadsheetID, sheetRange string) (schedule.StaticDirectory, error) {
	values, err := reader.GetValues(ctx, spreadsheetID, sheetRange)
	if err != nil {
		return nil, err
	}

	rows, err := sheetssql.DecodeTable[employeeRow](values)
	if err != nil {
		return nil, fmt.Errorf("failed to read employee sheet: %w", err)
	}

	directory := make(schedule.StaticDirectory, len(rows))
	for _, r := range rows {
		id := schedule.NormalizeEmployeeID(r.ID)
		if id == "" {
			continue
		}
		directory[id] = schedule.Contact{Phone: r.Phone, Role: r.Role}
	}
	return directory, nil
}

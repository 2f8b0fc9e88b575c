package workbook

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
)

// Layout locates the shift fields in a sheet. RowStart is 1-based, columns are 0-based.
type Layout struct {
	RowStart     int
	ColID        int
	ColLastName  int
	ColFirstName int
	ColDate      int
	ColShift     int
}

// DefaultLayout matches the staffing export: data from row 3 with id, last name, first name,
// date and shift time in columns A, C, D, F and G
var DefaultLayout = Layout{RowStart: 3, ColID: 0, ColLastName: 2, ColFirstName: 3, ColDate: 5, ColShift: 6}

// Excel serials between these bounds are read as dates (1954 to 2119)
const (
	minDateSerial = 20000
	maxDateSerial = 80000
)

var dateLayouts = []string{
	schedule.DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006/01/02",
}

// Shifts extracts one RawShift per row from RowStart on. Short rows yield empty fields;
// blank rows are kept so positions line up with the sheet.
func (l Layout) Shifts(rows [][]string) []schedule.RawShift {
	start := max(l.RowStart-1, 0)
	if start >= len(rows) {
		return nil
	}

	shifts := make([]schedule.RawShift, 0, len(rows)-start)
	for _, row := range rows[start:] {
		shifts = append(shifts, schedule.RawShift{
			EmployeeID: cellValue(row, l.ColID),
			LastName:   cellValue(row, l.ColLastName),
			FirstName:  cellValue(row, l.ColFirstName),
			Date:       NormalizeDate(cellValue(row, l.ColDate)),
			ShiftTime:  cellValue(row, l.ColShift),
		})
	}
	return shifts
}

// NormalizeDate rewrites Excel date serials and common timestamp forms as YYYY-MM-DD.
// Anything else is returned unchanged for the record builder to reject.
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial >= minDateSerial && serial <= maxDateSerial {
			if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return parsed.Format(schedule.DateLayout)
			}
		}
		return value
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format(schedule.DateLayout)
		}
	}
	return value
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

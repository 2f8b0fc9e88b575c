package workbook

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
)

const (
	titleRow  = 1
	headerRow = 2
	firstRow  = 3

	titleRowHeight = 25

	// DurationFormat shows durations as hours and minutes, past 24 hours
	DurationFormat = "[h]:mm;@"
)

var columnWidths = struct {
	shiftTime, name, phone, slot float64
}{shiftTime: 15, name: 25, phone: 10, slot: 15}

// Writer renders week schedules as xlsx workbooks, one sheet per day
type Writer struct {
	footer Footer
}

// NewWriter returns a writer that appends footer below every day schedule
func NewWriter(footer Footer) *Writer {
	return &Writer{footer: footer}
}

// WriteWeek renders every day of week and returns the workbook content
func (w *Writer) WriteWeek(week schedule.WeekSchedule) ([]byte, error) {
	if len(week.Days) == 0 {
		return nil, fmt.Errorf("week %s has no days", week.Key)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	for i, day := range week.Days {
		sheet := day.Weekday()
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		if err := w.writeDay(f, sheet, day, st); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", day.Title, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) writeDay(f *excelize.File, sheet string, day schedule.DaySchedule, st styles) error {
	lastCol := day.TotalColumn()
	bottomRow := firstRow + len(day.Rows)

	// Title
	titleStart := cellName(1, titleRow)
	titleEnd := cellName(lastCol, titleRow)
	if err := f.MergeCell(sheet, titleStart, titleEnd); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, titleStart, day.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, titleStart, titleEnd, st.title); err != nil {
		return err
	}
	if err := f.SetRowHeight(sheet, titleRow, titleRowHeight); err != nil {
		return err
	}

	// Headers, repeated below the last shift
	for _, row := range []int{headerRow, bottomRow} {
		if err := setRow(f, sheet, row, day.Headers); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cellName(1, row), cellName(lastCol, row), st.header); err != nil {
			return err
		}
	}

	for i, row := range day.Rows {
		if err := writeShiftRow(f, sheet, firstRow+i, lastCol, row, st); err != nil {
			return err
		}
	}

	// Day total
	totalCol, err := excelize.ColumnNumberToName(lastCol)
	if err != nil {
		return err
	}
	sumCell := cellName(lastCol, bottomRow)
	formula := fmt.Sprintf("SUM(%s%d:%s%d)", totalCol, firstRow, totalCol, bottomRow-1)
	if err := f.SetCellFormula(sheet, sumCell, formula); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, sumCell, sumCell, st.headerTotal); err != nil {
		return err
	}

	if err := setColumnWidths(f, sheet, lastCol); err != nil {
		return err
	}

	if w.footer.Empty() {
		return nil
	}
	return ApplyFooter(f, sheet, w.footer, bottomRow)
}

func writeShiftRow(f *excelize.File, sheet string, rowNum, lastCol int, row schedule.Row, st styles) error {
	fixed := []struct {
		value string
		style int
	}{
		{row.ShiftTime, st.shiftTime},
		{row.EmployeeName, st.name},
		{row.Phone, st.phone},
	}
	for i, c := range fixed {
		cell := cellName(i+1, rowNum)
		if err := f.SetCellValue(sheet, cell, c.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, c.style); err != nil {
			return err
		}
	}

	for i, status := range row.Statuses {
		cell := cellName(schedule.FixedColumns+i+1, rowNum)
		style := st.work
		switch status.Activity {
		case schedule.ActivityFree:
			style = st.free
		case schedule.ActivityLunch:
			style = st.lunch
		}
		if status.Activity != schedule.ActivityFree {
			if err := f.SetCellValue(sheet, cell, status.Label()); err != nil {
				return err
			}
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	totalCell := cellName(lastCol, rowNum)
	if err := f.SetCellValue(sheet, totalCell, excelDuration(row.Total)); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, totalCell, totalCell, st.total)
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cellName(1, row), &cells)
}

func setColumnWidths(f *excelize.File, sheet string, lastCol int) error {
	widths := []float64{columnWidths.shiftTime, columnWidths.name, columnWidths.phone}
	for col := 1; col <= lastCol; col++ {
		width := columnWidths.slot
		if col <= len(widths) {
			width = widths[col-1]
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

// excelDuration converts d to Excel's time representation, a fraction of a day
func excelDuration(d time.Duration) float64 {
	return d.Hours() / 24
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

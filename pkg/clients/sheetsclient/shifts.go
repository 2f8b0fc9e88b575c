package sheetsclient

import (
	"context"
	"fmt"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

// ValueReader reads a range of cells
type ValueReader interface {
	GetValues(ctx context.Context, spreadsheetID, sheetRange string) ([][]interface{}, error)
}

// ShiftSource reads shifts from a Google sheet. The range is treated as starting at A1, so
// Layout rows and columns count from the top left cell of the range.
type ShiftSource struct {
	Reader        ValueReader
	SpreadsheetID string
	Range         string
	Layout        workbook.Layout
}

// Name identifies the sheet range in logs and row errors
func (s ShiftSource) Name() string {
	return "sheet:" + s.Range
}

// ReadRows fetches the range and extracts its shift rows
func (s ShiftSource) ReadRows(ctx context.Context) ([]schedule.RawShift, error) {
	values, err := s.Reader.GetValues(ctx, s.SpreadsheetID, s.Range)
	if err != nil {
		return nil, err
	}
	return s.Layout.Shifts(toStrings(values)), nil
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v == nil {
				continue
			}
			cells[j] = fmt.Sprint(v)
		}
		rows[i] = cells
	}
	return rows
}

package workbook

import (
	"fmt"
	"io"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
)

// LoadSettingsDirectory reads a settings workbook whose first three columns are
// employee id, phone and role, below a single header row
func LoadSettingsDirectory(r io.Reader, filename string) (schedule.StaticDirectory, error) {
	rows, err := ReadRows(r, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	directory := schedule.StaticDirectory{}
	if len(rows) < 2 {
		return directory, nil
	}

	for _, row := range rows[1:] {
		id := schedule.NormalizeEmployeeID(cellValue(row, 0))
		if id == "" {
			continue
		}
		directory[id] = schedule.Contact{
			Phone: cellValue(row, 1),
			Role:  cellValue(row, 2),
		}
	}

	return directory, nil
}

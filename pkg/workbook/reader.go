package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxXLSRows bounds how many rows are read from a legacy .xls sheet
const maxXLSRows = 100000

// ErrNoWorksheet is returned for workbooks without any sheet
var ErrNoWorksheet = errors.New("no worksheet found")

// ReadRows returns the cell text of the active worksheet. The format is picked from the file
// extension: ".xls" is read as a legacy BIFF workbook, everything else as xlsx.
// xlsx cells are returned unformatted, so dates come back as Excel serial numbers.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return readXLS(data)
	default:
		return readXLSX(data)
	}
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls workbook: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoWorksheet
	}
	return wb.ReadAllCells(maxXLSRows), nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return nil, ErrNoWorksheet
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of %s: %w", sheet, err)
	}
	return rows, nil
}

package workbook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"
)

// FooterCell is one copied cell. Row and Col are 1-based and relative to the footer's top-left.
type FooterCell struct {
	Row   int
	Col   int
	Value string
	Style *excelize.Style
}

// FooterMerge is a merged range relative to the footer's top-left
type FooterMerge struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// Footer is content appended below every day schedule, with the source formatting
type Footer struct {
	Cells  []FooterCell
	Merges []FooterMerge
	Rows   int
}

// Empty reports whether the footer adds nothing
func (f Footer) Empty() bool {
	return len(f.Cells) == 0
}

// Stack returns f with next placed directly below it
func (f Footer) Stack(next Footer) Footer {
	out := Footer{Rows: f.Rows + next.Rows}
	out.Cells = append(out.Cells, f.Cells...)
	out.Merges = append(out.Merges, f.Merges...)
	for _, c := range next.Cells {
		c.Row += f.Rows
		out.Cells = append(out.Cells, c)
	}
	for _, m := range next.Merges {
		m.StartRow += f.Rows
		m.EndRow += f.Rows
		out.Merges = append(out.Merges, m)
	}
	return out
}

// PrepareFooter copies values, styles and merges of the active sheet of an xlsx footer
func PrepareFooter(r io.Reader) (Footer, error) {
	src, err := excelize.OpenReader(r)
	if err != nil {
		return Footer{}, fmt.Errorf("failed to open footer file: %w", err)
	}
	defer func() { _ = src.Close() }()

	sheet := src.GetSheetName(src.GetActiveSheetIndex())
	if sheet == "" {
		return Footer{}, ErrNoWorksheet
	}

	rows, err := src.GetRows(sheet)
	if err != nil {
		return Footer{}, fmt.Errorf("failed to get footer rows: %w", err)
	}

	footer := Footer{Rows: len(rows)}
	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cellRef, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return Footer{}, err
			}

			cell := FooterCell{Row: rowIdx + 1, Col: colIdx + 1, Value: val}
			if styleID, err := src.GetCellStyle(sheet, cellRef); err == nil && styleID != 0 {
				if style, err := src.GetStyle(styleID); err == nil {
					cell.Style = style
				}
			}
			footer.Cells = append(footer.Cells, cell)
		}
	}

	merges, err := src.GetMergeCells(sheet)
	if err != nil {
		return Footer{}, fmt.Errorf("failed to get footer merges: %w", err)
	}
	for _, m := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			return Footer{}, err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			return Footer{}, err
		}
		footer.Merges = append(footer.Merges, FooterMerge{
			StartRow: startRow, StartCol: startCol,
			EndRow: endRow, EndCol: endCol,
		})
	}

	return footer, nil
}

// LoadFooters stacks every .xlsx file in dir in name order. An empty dir or a missing
// folder gives an empty footer.
func LoadFooters(dir string) (Footer, error) {
	if dir == "" {
		return Footer{}, nil
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return Footer{}, fmt.Errorf("failed to list footer files: %w", err)
	}
	sort.Strings(paths)

	var footer Footer
	for _, path := range paths {
		part, err := loadFooterFile(path)
		if err != nil {
			return Footer{}, err
		}
		footer = footer.Stack(part)
	}
	return footer, nil
}

func loadFooterFile(path string) (Footer, error) {
	f, err := os.Open(path)
	if err != nil {
		return Footer{}, fmt.Errorf("failed to open footer file: %w", err)
	}
	defer f.Close()

	footer, err := PrepareFooter(f)
	if err != nil {
		return Footer{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return footer, nil
}

// ApplyFooter writes footer into sheet with its first row placed directly after rowOffset
func ApplyFooter(dst *excelize.File, sheet string, footer Footer, rowOffset int) error {
	for _, cell := range footer.Cells {
		cellName, err := excelize.CoordinatesToCellName(cell.Col, cell.Row+rowOffset)
		if err != nil {
			return err
		}
		if err := dst.SetCellValue(sheet, cellName, cell.Value); err != nil {
			return err
		}

		if cell.Style != nil {
			styleID, err := dst.NewStyle(cell.Style)
			if err != nil {
				return fmt.Errorf("failed to copy footer style: %w", err)
			}
			if err := dst.SetCellStyle(sheet, cellName, cellName, styleID); err != nil {
				return err
			}
		}
	}

	for _, m := range footer.Merges {
		start, err := excelize.CoordinatesToCellName(m.StartCol, m.StartRow+rowOffset)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(m.EndCol, m.EndRow+rowOffset)
		if err != nil {
			return err
		}
		if err := dst.MergeCell(sheet, start, end); err != nil {
			return fmt.Errorf("failed to merge footer cells: %w", err)
		}
	}

	return nil
}

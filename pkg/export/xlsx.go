// Package export writes tabular reports as Excel workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet: a bold header row followed by data rows.
// Cell values may be any type excelize understands (string, numbers,
// time.Time, bool).
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
	Widths  []float64
}

// WriteXLSX renders sheets, in order, into a single workbook.
func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("export: no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.Name); err != nil {
				return fmt.Errorf("export: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			return fmt.Errorf("export: add sheet %q: %w", sh.Name, err)
		}

		if err := writeSheet(f, sh, bold); err != nil {
			return fmt.Errorf("export: sheet %q: %w", sh.Name, err)
		}
	}

	f.SetActiveSheet(0)
	_, err = f.WriteTo(w)
	return err
}

func writeSheet(f *excelize.File, sh Sheet, headerStyle int) error {
	for col, h := range sh.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sh.Name, cell, h); err != nil {
			return err
		}
	}
	if len(sh.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sh.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sh.Name, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for r, row := range sh.Rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sh.Name, cell, v); err != nil {
				return err
			}
		}
	}

	for col, width := range sh.Widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.Name, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

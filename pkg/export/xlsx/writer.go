// Package xlsx flattens record collections into spreadsheet workbooks.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is one named collection of uniform rows. Columns declare both the
// header row and the cell order; every row must provide every declared
// column.
type Sheet struct {
	Name    string
	Columns []string
	Rows    []map[string]any
}

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write saves the sheets as an xlsx workbook at path. A row missing a
// declared column is a schema mismatch and fails the whole write; columns
// are never dropped silently.
func (w *Writer) Write(path string, sheets []Sheet) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	for i, sheet := range sheets {
		if i == 0 {
			// reuse the default sheet the workbook starts with
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
		}

		header := make([]any, len(sheet.Columns))
		for col, name := range sheet.Columns {
			header[col] = name
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header of sheet %q: %w", sheet.Name, err)
		}

		for rowIdx, row := range sheet.Rows {
			values := make([]any, len(sheet.Columns))
			for col, name := range sheet.Columns {
				value, ok := row[name]
				if !ok {
					return fmt.Errorf("sheet %q row %d: missing column %q", sheet.Name, rowIdx+1, name)
				}
				values[col] = value
			}
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to address row %d of sheet %q: %w", rowIdx+2, sheet.Name, err)
			}
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d of sheet %q: %w", rowIdx+2, sheet.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/models"
)

// SheetName returns the worksheet name used for a table.
func SheetName(t models.Table) string {
	return fmt.Sprintf("Table%d", t.Index+1)
}

// WriteXLSX writes a workbook with one worksheet per table. Each cell is written
// at its top-left position, and cells covering more than one position become
// merged ranges.
func WriteXLSX(w io.Writer, doc *models.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range doc.Tables {
		sheet := SheetName(t)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		if err := writeTable(f, sheet, t); err != nil {
			return fmt.Errorf("table %d: %w", t.Index, err)
		}
	}

	return f.Write(w)
}

func writeTable(f *excelize.File, sheet string, t models.Table) error {
	for _, g := range t.Groups {
		for _, row := range g.Rows {
			for _, cell := range row {
				if !cell.IsAnchor() {
					continue
				}

				start, err := excelize.CoordinatesToCellName(cell.C+1, cell.R+1)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, start, cell.V); err != nil {
					return err
				}
				if cell.RowSpan == 1 && cell.ColSpan == 1 {
					continue
				}

				end, err := excelize.CoordinatesToCellName(cell.C+cell.ColSpan, cell.R+cell.RowSpan)
				if err != nil {
					return err
				}
				if err := f.MergeCell(sheet, start, end); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
)

// WriteXLSX writes the sheet as a single-worksheet workbook with a styled header row.
func (r *ExportRepositoryImpl) WriteXLSX(w io.Writer, sheet entity.Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("error naming worksheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2D8278"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}

	header := make([]interface{}, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("error writing XLSX header: %w", err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("error writing XLSX row %d: %w", i+1, err)
		}
	}

	if len(sheet.Header) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(sheet.Header))
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "A1", lastCol+"1", headerStyle); err != nil {
			return fmt.Errorf("error styling XLSX header: %w", err)
		}
		if err := f.SetColWidth(name, "A", lastCol, 20); err != nil {
			return fmt.Errorf("error sizing XLSX columns: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing XLSX file: %w", err)
	}
	return nil
}

package stock

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	stockSheet  = "Stock"
	demandSheet = "Issued Demand"
)

var (
	stockHeader  = []string{"Category", "Type", "Size", "Quantity", "Status"}
	demandHeader = []string{"Category", "Type", "Size", "Issued", "Missing", "Members"}
)

// Workbook renders a snapshot as an xlsx file with one sheet for stock and
// one for issued demand.
func Workbook(snap *Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", stockSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(demandSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	stockRows := make([][]any, 0, len(snap.Stock))
	for _, l := range snap.Stock {
		stockRows = append(stockRows, []any{l.Category, l.Type, deref(l.Size), l.Quantity, l.Status})
	}
	if err := writeSheet(f, stockSheet, stockHeader, stockRows, headerStyle); err != nil {
		return nil, err
	}

	demandRows := make([][]any, 0, len(snap.Demand))
	for _, l := range snap.Demand {
		demandRows = append(demandRows, []any{l.Category, l.Type, deref(l.Size), l.Issued, l.Missing, l.Members})
	}
	if err := writeSheet(f, demandSheet, demandHeader, demandRows, headerStyle); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

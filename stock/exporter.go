package stock

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// Exporter renders the low-stock report as an XLSX workbook for the
// volunteers who work from spreadsheets.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// WriteLowStock writes the workbook for the given report lines to w.
func (e *Exporter) WriteLowStock(w io.Writer, entries []LowEntry, threshold int) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Stock Baixo"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{
		"Categoria", "Género", "Tamanho", "Faixa Etária", "Quantidade", "Chave",
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, entry := range entries {
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), entry.CategoryLabel)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.GenderLabel)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), entry.Size)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), entry.AgeTypeLabel)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), entry.Count)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), entry.Key)
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	// Footer with the generation context.
	footerRow := len(entries) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", footerRow),
		fmt.Sprintf("Gerado em %s · limite %d", time.Now().Format("2006-01-02 15:04"), threshold))

	f.SetActiveSheet(index)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

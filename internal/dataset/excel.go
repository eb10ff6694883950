package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cpucatalog/internal/domain"
)

const excelSheet = "CPU Specifications"

// WriteExcel writes the catalog as a single-sheet workbook with the same
// columns as the CSV export.
func WriteExcel(w io.Writer, cpus []domain.CPU) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return err
	}

	header := make([]any, len(exportHeader))
	for i, name := range exportHeader {
		header[i] = name
	}
	if err := f.SetSheetRow(excelSheet, "A1", &header); err != nil {
		return err
	}

	for i, cpu := range cpus {
		row := exportRow(cpu)
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		axis, err := excelize.JoinCellName("A", i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(excelSheet, axis, &cells); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

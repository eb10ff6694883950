// Package dataset reads and writes the CPU specification interchange
// formats: the semicolon-delimited CSV the catalog has always been
// maintained in, and an Excel workbook for export.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpucatalog/internal/domain"
)

// Import column names. The CSV is semicolon-delimited, may start with a
// UTF-8 BOM, and uses European decimal commas in numeric cells.
const (
	colModelName   = "CPU Model Name"
	colFamily      = "Family"
	colModel       = "CPU Model"
	colCodename    = "Codename"
	colCores       = "Cores"
	colThreads     = "Threads"
	colMaxTurbo    = "Max Turbo Frequency (GHz)"
	colL3Cache     = "L3 Cache (MB)"
	colTDP         = "TDP (W)"
	colLaunchYear  = "Launch Year"
	colMaxMemoryTB = "Max Memory (TB)"
)

var exportHeader = []string{
	"ID", colModelName, colFamily, colModel, colCodename, colCores, colThreads,
	colMaxTurbo, colL3Cache, colTDP, colLaunchYear, colMaxMemoryTB,
}

// RowError reports a row that could not be imported. Row numbers are
// 1-based and include the header line, matching what a spreadsheet shows.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// ParseCSV reads CPU records from a semicolon-delimited CSV stream. Rows
// missing a model name are reported in the returned RowError slice and
// skipped; a malformed stream fails outright.
func ParseCSV(r io.Reader) ([]domain.CPU, []RowError, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")] = i
	}
	if _, ok := index[colModelName]; !ok {
		return nil, nil, fmt.Errorf("missing required column %q", colModelName)
	}

	var cpus []domain.CPU
	var rowErrs []RowError

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row %d: %w", row, err)
		}

		cell := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		modelName := cell(colModelName)
		if modelName == "" {
			rowErrs = append(rowErrs, RowError{Row: row, Err: fmt.Errorf("missing %s", colModelName)})
			continue
		}

		cpus = append(cpus, domain.CPU{
			ModelName:   modelName,
			Family:      cell(colFamily),
			Model:       cell(colModel),
			Codename:    cell(colCodename),
			Cores:       parseInt(cell(colCores)),
			Threads:     parseInt(cell(colThreads)),
			MaxTurboGHz: parseFloat(cell(colMaxTurbo)),
			L3CacheMB:   parseFloat(cell(colL3Cache)),
			TDPWatts:    parseInt(cell(colTDP)),
			LaunchYear:  parseInt(cell(colLaunchYear)),
			MaxMemoryTB: parseFloat(cell(colMaxMemoryTB)),
		})
	}

	return cpus, rowErrs, nil
}

// WriteCSV writes the export CSV, including record IDs, with the same
// delimiter and header set the importer accepts.
func WriteCSV(w io.Writer, cpus []domain.CPU) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	if err := writer.Write(exportHeader); err != nil {
		return err
	}

	for _, cpu := range cpus {
		if err := writer.Write(exportRow(cpu)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportRow(cpu domain.CPU) []string {
	return []string{
		strconv.FormatInt(cpu.ID, 10),
		cpu.ModelName,
		cpu.Family,
		cpu.Model,
		cpu.Codename,
		formatInt(cpu.Cores),
		formatInt(cpu.Threads),
		formatFloat(cpu.MaxTurboGHz),
		formatFloat(cpu.L3CacheMB),
		formatInt(cpu.TDPWatts),
		formatInt(cpu.LaunchYear),
		formatFloat(cpu.MaxMemoryTB),
	}
}

// parseFloat accepts European decimal commas ("3,5" == 3.5) and returns nil
// for empty or unparsable cells.
func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseInt tolerates integral floats ("64,0" == 64) the way the source
// spreadsheets produce them.
func parseInt(s string) *int {
	f := parseFloat(s)
	if f == nil {
		return nil
	}
	v := int(*f)
	if float64(v) != *f {
		return nil
	}
	return &v
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

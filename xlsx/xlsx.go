// Package xlsx exports hw01 tables and reports as Excel workbooks.
package xlsx

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/etnz/hw01"
	"github.com/xuri/excelize/v2"
)

// DateHeader is the header of the date column of exported tables.
const DateHeader = "date"

// workbook is a new file whose default sheet is renamed to first.
func workbook(first string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// sheet returns the name of a sheet, creating it if needed.
func sheet(f *excelize.File, name string) (string, error) {
	if idx, _ := f.GetSheetIndex(name); idx >= 0 {
		return name, nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return "", fmt.Errorf("creating sheet %q: %w", name, err)
	}
	return name, nil
}

// cell converts a number to a cell value, missing values being empty cells.
func cell(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// writeRows writes a header and rows starting at A1, the header in bold.
func writeRows(f *excelize.File, name string, header []string, rows [][]any) error {
	name, err := sheet(f, name)
	if err != nil {
		return err
	}
	h := make([]any, len(header))
	for i, s := range header {
		h[i] = s
	}
	if err := f.SetSheetRow(name, "A1", &h); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(name, 1, 1, bold); err != nil {
		return err
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, addr, &row); err != nil {
			return fmt.Errorf("writing row %d of %q: %w", i+2, name, err)
		}
	}
	return nil
}

// WriteTable writes t in a sheet, one row per day, the date first.
func WriteTable(f *excelize.File, name string, t *hw01.Table) error {
	names := t.Names()
	columns := make([][]float64, len(names))
	for i, n := range names {
		columns[i], _ = t.Values(n)
	}
	rows := make([][]any, t.Len())
	for i, day := range t.Days() {
		row := make([]any, 0, len(names)+1)
		row = append(row, day.String())
		for _, c := range columns {
			row = append(row, cell(c[i]))
		}
		rows[i] = row
	}
	return writeRows(f, name, append([]string{DateHeader}, names...), rows)
}

// metricsRows lists stock metrics by name.
func metricsRows(m hw01.StockMetrics) [][]any {
	return [][]any{
		{"avg_daily_return", cell(m.AvgDailyReturn.Float())},
		{"cumulative_return", cell(m.CumulativeReturn.Float())},
		{"annualized_volatility", cell(m.AnnualizedVolatility.Float())},
		{"sharpe_ratio", cell(m.SharpeRatio.Float())},
	}
}

// Save writes f to path and closes it.
func Save(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		f.Close()
		return fmt.Errorf("saving %q: %w", path, err)
	}
	slog.Debug("workbook saved", "path", path, "sheets", f.GetSheetList())
	return f.Close()
}

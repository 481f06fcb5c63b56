package hw01

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/etnz/hw01/date"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Default date columns of the supported CSV files.
const (
	StockDateColumn   = "Date"
	WeatherDateColumn = "date"
)

// nanTokens are the cells read as missing values.
var nanTokens = []string{"", "NA", "N/A", "NaN", "nan", "null"}

// ReadOptions controls how a CSV file is read.
type ReadOptions struct {
	Comma      rune   // field delimiter, defaults to ','
	DateColumn string // required date column, defaults to the file kind's one
}

// ReadStockCSV reads a stock price CSV file with a required "Date" column.
func ReadStockCSV(path string, opts ReadOptions) (*Table, error) {
	if opts.DateColumn == "" {
		opts.DateColumn = StockDateColumn
	}
	return readCSVFile(path, opts)
}

// ReadWeatherCSV reads a weather history CSV file with a required "date" column.
func ReadWeatherCSV(path string, opts ReadOptions) (*Table, error) {
	if opts.DateColumn == "" {
		opts.DateColumn = WeatherDateColumn
	}
	return readCSVFile(path, opts)
}

func readCSVFile(path string, opts ReadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	slog.Debug("csv loaded", "path", path, "rows", t.Len(), "columns", t.Names())
	return t, nil
}

// ReadCSV reads a CSV content into a Table.
//
// opts.DateColumn is required. Every other column becomes a float column, any
// cell that is not a number is read as NaN.
func ReadCSV(r io.Reader, opts ReadOptions) (*Table, error) {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	// Type detection is disabled: cells are read as strings and converted
	// here, so that a column with a few bad cells is still a float column.
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	df := dataframe.ReadCSV(bytes.NewReader(content),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(opts.Comma),
		dataframe.NaNValues(nanTokens),
	)
	header := df.Names()
	if df.Err != nil {
		// gota rejects a header without records, that is an empty table.
		if header = headerOnly(content, opts.Comma); header == nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, df.Err)
		}
	}

	dateColumn := ""
	var names []string
	for _, name := range header {
		if strings.TrimSpace(name) == opts.DateColumn {
			dateColumn = name
			continue
		}
		names = append(names, name)
	}
	if dateColumn == "" {
		return nil, fmt.Errorf("expected a %q column: %w", opts.DateColumn, missingColumn(opts.DateColumn))
	}
	if df.Err != nil {
		for j := range names {
			names[j] = strings.TrimSpace(names[j])
		}
		return NewTable(nil, names, make([][]float64, len(names)))
	}

	records := df.Col(dateColumn).Records()
	days := make([]date.Date, len(records))
	for i, record := range records {
		on, err := date.Parse(record)
		if err != nil {
			// row 1 is the header.
			return nil, fmt.Errorf("%w: row %d: %v", ErrValidation, i+2, err)
		}
		days[i] = on
	}

	columns := make([][]float64, len(names))
	for j, name := range names {
		columns[j] = df.Col(name).Float()
	}
	for j := range names {
		names[j] = strings.TrimSpace(names[j])
	}
	return NewTable(days, names, columns)
}

// headerOnly returns the header of a CSV content made of a single record, nil
// otherwise.
func headerOnly(content []byte, comma rune) []string {
	r := csv.NewReader(bytes.NewReader(content))
	r.Comma = comma
	records, err := r.ReadAll()
	if err != nil || len(records) != 1 {
		return nil
	}
	return records[0]
}

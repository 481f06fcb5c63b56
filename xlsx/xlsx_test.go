package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/date"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func read(t *testing.T, read func(string, hw01.ReadOptions) (*hw01.Table, error), path string) *hw01.Table {
	t.Helper()
	table, err := read(filepath.Join("..", "testdata", path), hw01.ReadOptions{})
	if err != nil {
		t.Fatalf("failed to read %q: %v", path, err)
	}
	return table
}

// reopen saves f in memory and opens it back.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}
	f.Close()
	back, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	t.Cleanup(func() { back.Close() })
	return back
}

// cellValues returns the values of the cells of a sheet, by name.
func cellValues(t *testing.T, f *excelize.File, sheet string, cells ...string) []string {
	t.Helper()
	var res []string
	for _, c := range cells {
		v, err := f.GetCellValue(sheet, c)
		if err != nil {
			t.Fatalf("GetCellValue(%q, %q) error = %v", sheet, c, err)
		}
		res = append(res, v)
	}
	return res
}

func TestStockWorkbook(t *testing.T) {
	r, err := hw01.NewStockReport(read(t, hw01.ReadStockCSV, "nvda_2023_sample.csv"), hw01.StockOptions{Ticker: "NVDA"})
	if err != nil {
		t.Fatal(err)
	}
	f, err := StockWorkbook(r, 2)
	if err != nil {
		t.Fatalf("StockWorkbook() error = %v", err)
	}
	f = reopen(t, f)

	if diff := cmp.Diff([]string{PricesSheet, MetricsSheet}, f.GetSheetList()); diff != "" {
		t.Errorf("GetSheetList() mismatch (-want +got):\n%s", diff)
	}
	want := []string{"date", "price", "return", "ma_2", "2023-01-03", "100", "", "", "2023-01-10", "112"}
	got := cellValues(t, f, PricesSheet, "A1", "B1", "C1", "D1", "A2", "B2", "C2", "D2", "A7", "B7")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("prices sheet mismatch (-want +got):\n%s", diff)
	}
	want = []string{"metric", "NVDA", "avg_daily_return", "sharpe_ratio"}
	got = cellValues(t, f, MetricsSheet, "A1", "B1", "A2", "A5")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("metrics sheet mismatch (-want +got):\n%s", diff)
	}

	if _, err := StockWorkbook(r, -1); err == nil {
		t.Errorf("StockWorkbook(-1) must fail")
	}
}

func TestWeatherWorkbook(t *testing.T) {
	slice, _ := date.NewRange("2022-01-10", "2022-01-20")
	r, err := hw01.NewWeatherReport(read(t, hw01.ReadWeatherCSV, "weather_small.csv"), hw01.WeatherOptions{Slice: slice})
	if err != nil {
		t.Fatal(err)
	}
	f, err := WeatherWorkbook(r)
	if err != nil {
		t.Fatalf("WeatherWorkbook() error = %v", err)
	}
	f = reopen(t, f)

	if diff := cmp.Diff([]string{DataSheet, SummarySheet, SeasonsSheet}, f.GetSheetList()); diff != "" {
		t.Errorf("GetSheetList() mismatch (-want +got):\n%s", diff)
	}
	// rows are sorted on load, 2022-01-15 has no max temperature.
	want := []string{"date", hw01.CelsiusColumn, "2021-12-30", "10", "2022-01-15", ""}
	got := cellValues(t, f, DataSheet, "A1", "F1", "A2", "F2", "A5", "F5")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("data sheet mismatch (-want +got):\n%s", diff)
	}
	want = []string{"median_temperaturemin", "28", "sliced_mean_temperaturemax", "42"}
	got = cellValues(t, f, SummarySheet, "A3", "B3", "A6", "B6")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary sheet mismatch (-want +got):\n%s", diff)
	}
	want = []string{"2022", "Winter", "2021-12-30", "2022-01-25", "Summer"}
	got = cellValues(t, f, SeasonsSheet, "A2", "B2", "C2", "D2", "B4")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("seasons sheet mismatch (-want +got):\n%s", diff)
	}
}

func TestComparisonWorkbook(t *testing.T) {
	c, err := hw01.NewComparison(hw01.StockOptions{PriceColumn: "Close"},
		hw01.StockSource{Ticker: "NVDA", Table: read(t, hw01.ReadStockCSV, "nvda_2023_sample.csv")},
		hw01.StockSource{Ticker: "AMD", Table: read(t, hw01.ReadStockCSV, "amd_2023_sample.csv")},
	)
	if err != nil {
		t.Fatal(err)
	}
	f, err := ComparisonWorkbook(c)
	if err != nil {
		t.Fatalf("ComparisonWorkbook() error = %v", err)
	}
	f = reopen(t, f)

	want := []string{"metric", "NVDA", "AMD", "cumulative_return"}
	got := cellValues(t, f, MetricsSheet, "A1", "B1", "C1", "A3")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("metrics sheet mismatch (-want +got):\n%s", diff)
	}
	rows, err := f.GetRows(GrowthSheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 7 || rows[1][0] != "2023-01-03" {
		t.Errorf("growth sheet = %v want a header and 6 days", rows)
	}
}

func TestSave(t *testing.T) {
	table := read(t, hw01.ReadStockCSV, "amd_2023_sample.csv")
	f, err := workbook(DataSheet)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteTable(f, DataSheet, table); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "amd.xlsx")
	if err := Save(f, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	back, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer back.Close()
	if v, _ := back.GetCellValue(DataSheet, "E2"); v != "64.77" {
		t.Errorf("Close on 2023-01-03 = %q want 64.77", v)
	}
}

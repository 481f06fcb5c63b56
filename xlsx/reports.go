package xlsx

import (
	"strconv"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/date"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	PricesSheet  = "prices"
	MetricsSheet = "metrics"
	DataSheet    = "data"
	SummarySheet = "summary"
	SeasonsSheet = "seasons"
	GrowthSheet  = "growth"
)

// StockWorkbook exports the prices, returns and moving averages of a stock
// report, and its metrics.
func StockWorkbook(r *hw01.StockReport, windows ...int) (*excelize.File, error) {
	t, err := hw01.NewTable(r.Prices.Days(), []string{"price"}, [][]float64{r.Prices.Slice()})
	if err != nil {
		return nil, err
	}
	t = t.WithHistory("return", r.Returns)
	if t, err = hw01.RollingMovingAverages(t, "price", windows...); err != nil {
		return nil, err
	}

	f, err := workbook(PricesSheet)
	if err != nil {
		return nil, err
	}
	if err := WriteTable(f, PricesSheet, t); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRows(f, MetricsSheet, []string{"metric", r.Ticker}, metricsRows(r.Metrics)); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WeatherWorkbook exports the weather data with its Celsius column, the
// summary and the seasonal summaries.
func WeatherWorkbook(r *hw01.WeatherReport) (*excelize.File, error) {
	f, err := workbook(DataSheet)
	if err != nil {
		return nil, err
	}
	if err := weatherSheets(f, r); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func weatherSheets(f *excelize.File, r *hw01.WeatherReport) error {
	if err := WriteTable(f, DataSheet, r.Table); err != nil {
		return err
	}

	var summary [][]any
	for _, k := range []string{"mean_" + hw01.TemperatureMin, "median_" + hw01.TemperatureMin, "mean_" + hw01.TemperatureMax, "median_" + hw01.TemperatureMax} {
		summary = append(summary, []any{k, cell(r.Summary[k].Float())})
	}
	for _, k := range r.SlicedColumns {
		summary = append(summary, []any{"sliced_mean_" + k, cell(r.SlicedMeans[k].Float())})
	}
	if err := writeRows(f, SummarySheet, []string{"statistic", "value"}, summary); err != nil {
		return err
	}

	var seasons [][]any
	for _, y := range r.Seasonal.Years() {
		for _, s := range date.Seasons {
			ss, ok := r.Seasonal[y][s]
			if !ok {
				continue
			}
			seasons = append(seasons, []any{
				strconv.Itoa(y), s.String(), ss.DateMin.String(), ss.DateMax.String(),
				cell(ss.MeanTemperatureMin.Float()), cell(ss.MedianTemperatureMin.Float()),
				cell(ss.MeanTemperatureMax.Float()), cell(ss.MedianTemperatureMax.Float()),
			})
		}
	}
	header := []string{"year", "season", "date_min", "date_max",
		"mean_" + hw01.TemperatureMin, "median_" + hw01.TemperatureMin,
		"mean_" + hw01.TemperatureMax, "median_" + hw01.TemperatureMax}
	return writeRows(f, SeasonsSheet, header, seasons)
}

// ComparisonWorkbook exports the metrics of every compared stock, one column
// per ticker, and their cumulative growth aligned on dates.
func ComparisonWorkbook(c *hw01.Comparison) (*excelize.File, error) {
	f, err := workbook(MetricsSheet)
	if err != nil {
		return nil, err
	}
	if err := comparisonSheets(f, c); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func comparisonSheets(f *excelize.File, c *hw01.Comparison) error {
	header := []string{"metric"}
	var rows [][]any
	histories := make([]*date.History[float64], len(c.Stocks))
	for i, s := range c.Stocks {
		header = append(header, s.Ticker)
		for j, row := range metricsRows(s.Metrics) {
			if i == 0 {
				rows = append(rows, row)
				continue
			}
			rows[j] = append(rows[j], row[1])
		}
		histories[i] = s.Growth
	}
	if err := writeRows(f, MetricsSheet, header, rows); err != nil {
		return err
	}

	var growth [][]any
	for day := range date.Iterate(histories...) {
		row := []any{day.String()}
		for _, h := range histories {
			v, ok := h.Get(day)
			if !ok {
				row = append(row, nil)
				continue
			}
			row = append(row, cell(v))
		}
		growth = append(growth, row)
	}
	return writeRows(f, GrowthSheet, append([]string{DateHeader}, header[1:]...), growth)
}

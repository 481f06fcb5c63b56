package hw01

import (
	"cmp"

	"github.com/etnz/hw01/date"
)

// DefaultTicker labels a stock report with no ticker.
const DefaultTicker = "UNKNOWN"

// StockOptions controls the computation of a StockReport.
type StockOptions struct {
	Ticker      string  // label only, defaults to DefaultTicker
	PriceColumn string  // defaults to PriceColumn
	RiskFree    float64 // annual risk free rate
	TradingDays int     // defaults to TradingDays
}

func (o StockOptions) withDefaults() StockOptions {
	o.Ticker = cmp.Or(o.Ticker, DefaultTicker)
	o.PriceColumn = cmp.Or(o.PriceColumn, PriceColumn)
	o.TradingDays = cmp.Or(o.TradingDays, TradingDays)
	return o
}

// StockReport is the analysis of a single stock price history.
type StockReport struct {
	Ticker      string
	PriceColumn string
	NRows       int
	Range       date.Range
	FirstPrice  Number // first valid price
	LastPrice   Number // last valid price
	Metrics     StockMetrics
	Prices      *date.History[float64]
	Returns     *date.History[float64]
}

// First5Returns returns the first 5 daily returns, the first one being missing.
func (r *StockReport) First5Returns() []Number {
	return numbers(r.Returns.Slice()[:min(5, r.Returns.Len())])
}

// NewStockReport analyses the price column of t.
func NewStockReport(t *Table, opts StockOptions) (*StockReport, error) {
	opts = opts.withDefaults()
	prices, err := t.Column(opts.PriceColumn)
	if err != nil {
		return nil, err
	}
	r := &StockReport{
		Ticker:      opts.Ticker,
		PriceColumn: opts.PriceColumn,
		NRows:       t.Len(),
		Range:       t.Span(),
		FirstPrice:  NA(),
		LastPrice:   NA(),
		Metrics:     ComputeStockMetrics(prices, opts.RiskFree, opts.TradingDays),
		Prices:      prices,
		Returns:     DailySimpleReturns(prices),
	}
	if p := valid(prices); len(p) > 0 {
		r.FirstPrice, r.LastPrice = Number(p[0]), Number(p[len(p)-1])
	}
	return r, nil
}

// MarshalJSON encodes the report as a JSON object with sorted keys.
func (r *StockReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", r.Ticker)
	w.Append("n_rows", r.NRows)
	w.Append("metrics", r.Metrics)
	w.Append("first_5_returns", r.First5Returns())
	return w.MarshalJSON()
}

// WeatherOptions controls the computation of a WeatherReport.
type WeatherOptions struct {
	Slice   date.Range // rows averaged by SliceAndMeans, none if zero
	Columns []string   // columns averaged by SliceAndMeans, defaults to DefaultSliceColumns
}

// WeatherReport is the analysis of a weather history.
type WeatherReport struct {
	NRows         int
	Range         date.Range
	Summary       map[string]Number
	Slice         date.Range
	SlicedMeans   map[string]Number // nil when no slice was requested
	SlicedColumns []string          // requested order of SlicedMeans
	HasCelsius    bool
	Seasonal      Seasonal
	Table         *Table // source table with the Celsius column
}

// NewWeatherReport analyses a weather history.
func NewWeatherReport(t *Table, opts WeatherOptions) (*WeatherReport, error) {
	summary, err := MinMaxSummary(t)
	if err != nil {
		return nil, err
	}
	r := &WeatherReport{
		NRows:   t.Len(),
		Range:   t.Span(),
		Summary: summary,
		Slice:   opts.Slice,
	}
	if opts.Slice != (date.Range{}) {
		r.SlicedColumns = opts.Columns
		if len(r.SlicedColumns) == 0 {
			r.SlicedColumns = DefaultSliceColumns
		}
		if r.SlicedMeans, err = SliceAndMeans(t, opts.Slice, r.SlicedColumns...); err != nil {
			return nil, err
		}
	}
	if r.Table, err = AddCelsiusColumn(t); err != nil {
		return nil, err
	}
	r.HasCelsius = r.Table.Has(CelsiusColumn)
	if r.Seasonal, err = SeasonalSummaries(t); err != nil {
		return nil, err
	}
	return r, nil
}

// MarshalJSON encodes the report as a JSON object with sorted keys.
func (r *WeatherReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("n_rows", r.NRows)
	w.Append("summary", r.Summary)
	w.Append("sliced_means", r.SlicedMeans)
	w.Append("has_celsius", r.HasCelsius)
	w.Append("seasonal_summaries", r.Seasonal)
	return w.MarshalJSON()
}

// StockSource is a named stock price table to compare.
type StockSource struct {
	Ticker string
	Table  *Table
}

// ComparedStock is one stock of a Comparison.
type ComparedStock struct {
	Ticker  string
	NRows   int
	Range   date.Range
	Metrics StockMetrics
	Growth  *date.History[float64] // cumulative growth of 1 invested on the first day
}

// MarshalJSON flattens the metrics into the stock object.
func (s ComparedStock) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", s.Ticker)
	w.Append("n_rows", s.NRows)
	w.EmbedFrom(s.Metrics)
	return w.MarshalJSON()
}

// Comparison compares the performance of several stocks over their own history.
type Comparison struct {
	PriceColumn string
	Stocks      []ComparedStock // in source order
}

// NewComparison analyses each source with the same options. opts.Ticker is ignored.
func NewComparison(opts StockOptions, sources ...StockSource) (*Comparison, error) {
	opts = opts.withDefaults()
	c := &Comparison{PriceColumn: opts.PriceColumn}
	for _, src := range sources {
		prices, err := src.Table.Column(opts.PriceColumn)
		if err != nil {
			return nil, err
		}
		c.Stocks = append(c.Stocks, ComparedStock{
			Ticker:  src.Ticker,
			NRows:   src.Table.Len(),
			Range:   src.Table.Span(),
			Metrics: ComputeStockMetrics(prices, opts.RiskFree, opts.TradingDays),
			Growth:  CumulativeGrowth(DailySimpleReturns(prices)),
		})
	}
	return c, nil
}

// Best returns the stock with the highest cumulative return, false if none
// has one.
func (c *Comparison) Best() (ComparedStock, bool) {
	var best ComparedStock
	found := false
	for _, s := range c.Stocks {
		cr := s.Metrics.CumulativeReturn
		if cr.IsNA() {
			continue
		}
		if !found || cr > best.Metrics.CumulativeReturn {
			best, found = s, true
		}
	}
	return best, found
}

// MarshalJSON encodes the comparison as a JSON object with sorted keys.
func (c *Comparison) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("price_column", c.PriceColumn)
	w.Append("stocks", c.Stocks)
	if best, ok := c.Best(); ok {
		w.Append("best", best.Ticker)
	} else {
		w.Append("best", nil)
	}
	return w.MarshalJSON()
}

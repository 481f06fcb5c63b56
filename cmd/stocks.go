package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/chart"
	"github.com/etnz/hw01/renderer"
	"github.com/etnz/hw01/xlsx"
	"github.com/google/subcommands"
	"gonum.org/v1/plot"
)

// Chart kinds of the stocks subcommand.
const (
	PriceMA     = "price_ma"
	ReturnsHist = "returns_hist"
)

type stockOutput struct{ *hw01.StockReport }

func (r stockOutput) Text(o renderer.Options) string { return renderer.StockText(r.StockReport, o) }
func (r stockOutput) Markdown(o renderer.Options) string {
	return renderer.StockMarkdown(r.StockReport, o)
}

// stocksCmd holds the flags for the 'stocks' subcommand.
type stocksCmd struct {
	outputFlags
	input       string
	ticker      string
	priceCol    string
	riskFree    float64
	tradingDays int
	plotOut     string
	plotKind    string
	windows     string
	bins        int
	xlsxOut     string
	// processed
	parsedWindows []int
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "analyze a stock price CSV" }
func (*stocksCmd) Usage() string {
	return `hw01 stocks -input <csv> [-ticker <symbol>] [-price-col <column>] [-json | -md]

  Computes the daily returns of a price column and headline metrics:
  average daily return, cumulative return, annualized volatility and
  Sharpe ratio. Optionally saves a chart and a workbook.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.input, "input", "", "Path to the stock CSV (required)")
	f.StringVar(&c.currency, "currency", cfg.Stocks.Currency, "Currency used to display prices")
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol, for labeling only")
	f.StringVar(&c.priceCol, "price-col", cfg.Stocks.PriceColumn, "Price column to use")
	f.Float64Var(&c.riskFree, "risk-free", cfg.Stocks.RiskFree, "Annual risk free rate, e.g. 0.015 for 1.5%")
	f.IntVar(&c.tradingDays, "trading-days", cfg.Stocks.TradingDays, "Trading days per year, to annualize metrics")
	f.StringVar(&c.plotOut, "plot-out", "", "Path to save a PNG chart. If omitted, no chart is saved.")
	f.StringVar(&c.plotKind, "plot-kind", PriceMA, "Chart kind: "+PriceMA+" or "+ReturnsHist)
	f.StringVar(&c.windows, "windows", formatInts(cfg.Stocks.Windows), "Comma separated moving average windows ("+PriceMA+" and -xlsx)")
	f.IntVar(&c.bins, "bins", cfg.Stocks.Bins, "Bins of the "+ReturnsHist+" chart")
	f.StringVar(&c.xlsxOut, "xlsx", "", "Path to save prices, returns and moving averages as a workbook")
}

func (c *stocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(); err != nil {
		return ExitStatus(err)
	}
	return ExitStatus(c.run())
}

func (c *stocksCmd) init() error {
	if c.input == "" {
		return fmt.Errorf("%w: -input is required", errUsage)
	}
	if err := c.outputFlags.validate(); err != nil {
		return err
	}
	if c.plotKind != PriceMA && c.plotKind != ReturnsHist {
		return fmt.Errorf("%w: unknown -plot-kind %q", errUsage, c.plotKind)
	}
	if c.bins <= 0 {
		return fmt.Errorf("%w: -bins must be positive", errUsage)
	}
	if c.tradingDays <= 0 {
		return fmt.Errorf("%w: -trading-days must be positive", errUsage)
	}
	var err error
	if c.parsedWindows, err = parseInts(c.windows); err != nil {
		return fmt.Errorf("%w: -windows: %v", errUsage, err)
	}
	return nil
}

func (c *stocksCmd) run() error {
	table, err := hw01.ReadStockCSV(c.input, readOptions())
	if err != nil {
		return err
	}
	report, err := hw01.NewStockReport(table, hw01.StockOptions{
		Ticker:      c.ticker,
		PriceColumn: c.priceCol,
		RiskFree:    c.riskFree,
		TradingDays: c.tradingDays,
	})
	if err != nil {
		return err
	}

	if c.plotOut != "" {
		if err := c.plot(report); err != nil {
			return err
		}
	}
	if c.xlsxOut != "" {
		f, err := xlsx.StockWorkbook(report, c.parsedWindows...)
		if err != nil {
			return err
		}
		if err := xlsx.Save(f, c.xlsxOut); err != nil {
			return err
		}
	}
	return c.print(stockOutput{report})
}

func (c *stocksCmd) plot(r *hw01.StockReport) error {
	var (
		p   *plot.Plot
		err error
	)
	switch c.plotKind {
	case ReturnsHist:
		p, err = chart.ReturnsHistogram(r.Returns, c.bins)
	default:
		p, err = chart.PriceMovingAverages(r.Prices, r.PriceColumn, c.parsedWindows...)
	}
	if err != nil {
		return err
	}
	if err := chart.SavePNG(c.plotOut, p, cfg.chartOptions()); err != nil {
		return err
	}
	slog.Debug("plot saved", "path", c.plotOut, "kind", c.plotKind)
	return nil
}

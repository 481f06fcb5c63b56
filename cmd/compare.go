package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/chart"
	"github.com/etnz/hw01/renderer"
	"github.com/etnz/hw01/xlsx"
	"github.com/google/subcommands"
)

type comparisonOutput struct{ *hw01.Comparison }

func (r comparisonOutput) Text(o renderer.Options) string {
	return renderer.ComparisonText(r.Comparison, o)
}
func (r comparisonOutput) Markdown(o renderer.Options) string {
	return renderer.ComparisonMarkdown(r.Comparison, o)
}

// source is a TICKER=path argument.
type source struct{ ticker, path string }

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	outputFlags
	priceCol    string
	riskFree    float64
	tradingDays int
	plotOut     string
	xlsxOut     string
	// processed
	sources []source
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the performance of several stocks" }
func (*compareCmd) Usage() string {
	return `hw01 compare [-price-col <column>] [-json | -md] <TICKER>=<csv>...

  Computes the metrics of every stock on the same price column and reports
  the one with the best cumulative return.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.priceCol, "price-col", "Close", "Price column to use")
	f.Float64Var(&c.riskFree, "risk-free", cfg.Stocks.RiskFree, "Annual risk free rate")
	f.IntVar(&c.tradingDays, "trading-days", cfg.Stocks.TradingDays, "Trading days per year, to annualize metrics")
	f.StringVar(&c.plotOut, "plot-out", "", "Path to save a PNG chart of the cumulative growth")
	f.StringVar(&c.xlsxOut, "xlsx", "", "Path to save the metrics and growth as a workbook")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(f.Args()); err != nil {
		return ExitStatus(err)
	}
	return ExitStatus(c.run())
}

func (c *compareCmd) init(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: at least one TICKER=path argument is required", errUsage)
	}
	if err := c.outputFlags.validate(); err != nil {
		return err
	}
	if c.tradingDays <= 0 {
		return fmt.Errorf("%w: -trading-days must be positive", errUsage)
	}
	c.sources = c.sources[:0]
	for _, arg := range args {
		ticker, path, ok := strings.Cut(arg, "=")
		if !ok || ticker == "" || path == "" {
			return fmt.Errorf("%w: invalid argument %q, want TICKER=path", errUsage, arg)
		}
		c.sources = append(c.sources, source{ticker: ticker, path: path})
	}
	return nil
}

func (c *compareCmd) run() error {
	var sources []hw01.StockSource
	for _, src := range c.sources {
		table, err := hw01.ReadStockCSV(src.path, readOptions())
		if err != nil {
			return fmt.Errorf("%s: %w", src.ticker, err)
		}
		sources = append(sources, hw01.StockSource{Ticker: src.ticker, Table: table})
	}
	comparison, err := hw01.NewComparison(hw01.StockOptions{
		PriceColumn: c.priceCol,
		RiskFree:    c.riskFree,
		TradingDays: c.tradingDays,
	}, sources...)
	if err != nil {
		return err
	}

	if c.plotOut != "" {
		p, err := chart.Growth(comparison)
		if err != nil {
			return err
		}
		if err := chart.SavePNG(c.plotOut, p, cfg.chartOptions()); err != nil {
			return err
		}
		slog.Debug("plot saved", "path", c.plotOut)
	}
	if c.xlsxOut != "" {
		f, err := xlsx.ComparisonWorkbook(comparison)
		if err != nil {
			return err
		}
		if err := xlsx.Save(f, c.xlsxOut); err != nil {
			return err
		}
	}
	return c.print(comparisonOutput{comparison})
}

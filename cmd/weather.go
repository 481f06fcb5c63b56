package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/chart"
	"github.com/etnz/hw01/date"
	"github.com/etnz/hw01/renderer"
	"github.com/etnz/hw01/xlsx"
	"github.com/google/subcommands"
)

type weatherOutput struct{ *hw01.WeatherReport }

func (r weatherOutput) Text(o renderer.Options) string {
	return renderer.WeatherText(r.WeatherReport, o)
}
func (r weatherOutput) Markdown(o renderer.Options) string {
	return renderer.WeatherMarkdown(r.WeatherReport, o)
}

// weatherCmd holds the flags for the 'weather' subcommand.
type weatherCmd struct {
	outputFlags
	input   string
	start   string
	end     string
	columns string
	plotOut string
	show    bool
	xlsxOut string
	// processed
	slice date.Range
}

func (*weatherCmd) Name() string     { return "weather" }
func (*weatherCmd) Synopsis() string { return "analyze a weather history CSV" }
func (*weatherCmd) Usage() string {
	return `hw01 weather -input <csv> [-start <date>] [-end <date>] [-json | -md]

  Summarizes min and max temperatures, averages columns between two dates
  (both included), and summarizes every season of every season-year,
  December belonging to the winter of the following year.
  Use empty -start and -end to skip the date slice.
`
}

func (c *weatherCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.input, "input", "", "Path to the weather CSV (required)")
	f.StringVar(&c.start, "start", cfg.Weather.Start, "Slice start date")
	f.StringVar(&c.end, "end", cfg.Weather.End, "Slice end date")
	f.StringVar(&c.columns, "columns", strings.Join(cfg.Weather.Columns, ","), "Comma separated columns averaged over the slice")
	f.StringVar(&c.plotOut, "plot-out", "", "Path to save a PNG chart of the max temperature. If omitted, no chart is saved.")
	f.BoolVar(&c.show, "show", false, "Open the chart with the platform image viewer")
	f.StringVar(&c.xlsxOut, "xlsx", "", "Path to save the data, summary and seasons as a workbook")
}

func (c *weatherCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(); err != nil {
		return ExitStatus(err)
	}
	return ExitStatus(c.run())
}

func (c *weatherCmd) init() error {
	if c.input == "" {
		return fmt.Errorf("%w: -input is required", errUsage)
	}
	if err := c.outputFlags.validate(); err != nil {
		return err
	}
	if c.start == "" && c.end == "" {
		return nil
	}
	var err error
	if c.slice, err = date.NewRange(c.start, c.end); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func (c *weatherCmd) run() error {
	table, err := hw01.ReadWeatherCSV(c.input, readOptions())
	if err != nil {
		return err
	}
	report, err := hw01.NewWeatherReport(table, hw01.WeatherOptions{Slice: c.slice, Columns: parseList(c.columns)})
	if err != nil {
		return err
	}

	if c.plotOut != "" || c.show {
		if err := c.plot(report); err != nil {
			return err
		}
	}
	if c.xlsxOut != "" {
		f, err := xlsx.WeatherWorkbook(report)
		if err != nil {
			return err
		}
		if err := xlsx.Save(f, c.xlsxOut); err != nil {
			return err
		}
	}
	return c.print(weatherOutput{report})
}

// plot saves the chart, in a temporary file when only shown.
func (c *weatherCmd) plot(r *hw01.WeatherReport) error {
	p, err := chart.TemperatureMax(r.Table)
	if err != nil {
		return err
	}
	path := c.plotOut
	if path == "" {
		path = previewPath("weather.png")
	}
	if err := chart.SavePNG(path, p, cfg.chartOptions()); err != nil {
		return err
	}
	slog.Debug("plot saved", "path", path)
	if c.show {
		show(path)
	}
	return nil
}

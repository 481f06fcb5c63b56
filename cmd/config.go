package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/chart"
	"github.com/etnz/hw01/date"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults of the subcommand flags.
type Config struct {
	Stocks struct {
		PriceColumn string  `yaml:"price_column"`
		RiskFree    float64 `yaml:"risk_free"`
		Windows     []int   `yaml:"windows"`
		Bins        int     `yaml:"bins"`
		TradingDays int     `yaml:"trading_days"`
		Currency    string  `yaml:"currency"`
	} `yaml:"stocks"`
	Weather struct {
		Start   string   `yaml:"start"`
		End     string   `yaml:"end"`
		Columns []string `yaml:"columns"`
	} `yaml:"weather"`
	Plot struct {
		DPI        int     `yaml:"dpi"`
		WidthInch  float64 `yaml:"width_inch"`
		HeightInch float64 `yaml:"height_inch"`
	} `yaml:"plot"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	cfg := newConfig()
	cfg.applyDefaults()
	return cfg
}

// newConfig returns a config to decode into. A zero risk free rate is valid,
// so its default is set before decoding.
func newConfig() *Config {
	cfg := &Config{}
	cfg.Stocks.RiskFree = hw01.DefaultRiskFree
	return cfg
}

// applyDefaults replaces zero values by their default.
func (c *Config) applyDefaults() {
	if c.Stocks.PriceColumn == "" {
		c.Stocks.PriceColumn = hw01.PriceColumn
	}
	if len(c.Stocks.Windows) == 0 {
		c.Stocks.Windows = []int{20, 50}
	}
	if c.Stocks.Bins == 0 {
		c.Stocks.Bins = chart.DefaultBins
	}
	if c.Stocks.TradingDays == 0 {
		c.Stocks.TradingDays = hw01.TradingDays
	}
	if c.Stocks.Currency == "" {
		c.Stocks.Currency = "USD"
	}
	if c.Weather.Start == "" {
		c.Weather.Start = "2022-01-10"
	}
	if c.Weather.End == "" {
		c.Weather.End = "2022-01-20"
	}
	if len(c.Weather.Columns) == 0 {
		c.Weather.Columns = hw01.DefaultSliceColumns
	}
	if c.Plot.DPI == 0 {
		c.Plot.DPI = chart.DefaultDPI
	}
	if c.Plot.WidthInch == 0 {
		c.Plot.WidthInch = chart.DefaultWidth
	}
	if c.Plot.HeightInch == 0 {
		c.Plot.HeightInch = chart.DefaultHeight
	}
}

// LoadConfig reads a YAML configuration file. A missing file yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := newConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that values are usable as flag defaults.
func (c *Config) Validate() error {
	for _, w := range c.Stocks.Windows {
		if w <= 0 {
			return fmt.Errorf("stocks.windows must be positive, got %d", w)
		}
	}
	if c.Stocks.Bins <= 0 {
		return fmt.Errorf("stocks.bins must be positive")
	}
	if c.Stocks.TradingDays <= 0 {
		return fmt.Errorf("stocks.trading_days must be positive")
	}
	if _, err := date.NewRange(c.Weather.Start, c.Weather.End); err != nil {
		return fmt.Errorf("weather.start, weather.end: %w", err)
	}
	if c.Plot.DPI <= 0 || c.Plot.WidthInch <= 0 || c.Plot.HeightInch <= 0 {
		return fmt.Errorf("plot.dpi, plot.width_inch and plot.height_inch must be positive")
	}
	return nil
}

// chartOptions returns the image options of the configuration.
func (c *Config) chartOptions() chart.Options {
	return chart.Options{DPI: c.Plot.DPI, Width: c.Plot.WidthInch, Height: c.Plot.HeightInch}
}

// formatInts formats a list of ints as a comma separated list.
func formatInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

// parseInts parses a comma separated list of positive ints.
func parseInts(s string) ([]int, error) {
	var res []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("%d must be positive", v)
		}
		res = append(res, v)
	}
	return res, nil
}

// parseList parses a comma separated list of names.
func parseList(s string) []string {
	var res []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			res = append(res, f)
		}
	}
	return res
}

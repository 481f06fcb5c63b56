package chart

import (
	"fmt"

	"github.com/etnz/hw01"
	"gonum.org/v1/plot"
)

// Growth plots the cumulative growth of every compared stock.
func Growth(c *hw01.Comparison) (*plot.Plot, error) {
	p := timeSeries(fmt.Sprintf("Cumulative Growth on %s", c.PriceColumn), "Growth of 1")
	for i, s := range c.Stocks {
		if err := addLine(p, i, s.Ticker, s.Growth); err != nil {
			return nil, err
		}
	}
	return p, nil
}

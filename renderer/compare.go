package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/hw01"
	md "github.com/nao1215/markdown"
)

type comparisonView struct {
	*hw01.Comparison
	Best string
}

func newComparisonView(c *hw01.Comparison) comparisonView {
	v := comparisonView{Comparison: c, Best: hw01.NotAvailable}
	if best, ok := c.Best(); ok {
		v.Best = best.Ticker
	}
	return v
}

// ComparisonText renders a stock comparison as plain text.
func ComparisonText(c *hw01.Comparison, opts Options) string {
	return renderTemplate("compare", "compare.txt", commonPartials(), opts, newComparisonView(c))
}

// ComparisonMarkdown renders a stock comparison as a markdown document.
func ComparisonMarkdown(c *hw01.Comparison, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Stock Comparison on %s", c.PriceColumn))
	table := md.TableSet{
		Header: []string{"Ticker", "Dates", "Avg Daily Return", "Cumulative Return", "Volatility", "Sharpe"},
		Rows:   [][]string{},
	}
	best := newComparisonView(c).Best
	for _, s := range c.Stocks {
		ticker := s.Ticker
		if ticker == best {
			ticker = md.Bold(ticker)
		}
		table.Rows = append(table.Rows, []string{
			ticker,
			s.Range.String(),
			s.Metrics.AvgDailyReturn.Fixed(4),
			s.Metrics.CumulativeReturn.Fixed(4),
			s.Metrics.AnnualizedVolatility.Fixed(4),
			s.Metrics.SharpeRatio.Fixed(4),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Best cumulative return: %s", best))

	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/date"
	md "github.com/nao1215/markdown"
)

type returnRow struct {
	Day   date.Date
	Value hw01.Number
}

type stockView struct {
	*hw01.StockReport
	First5 []returnRow
}

func newStockView(r *hw01.StockReport) stockView {
	v := stockView{StockReport: r}
	for i, n := range r.First5Returns() {
		day, _ := r.Returns.At(i)
		v.First5 = append(v.First5, returnRow{Day: day, Value: n})
	}
	return v
}

// StockText renders a stock report as plain text.
func StockText(r *hw01.StockReport, opts Options) string {
	return renderTemplate("stock", "stock.txt", commonPartials(), opts, newStockView(r))
}

// metricsTable lists stock metrics in display order.
func metricsTable(m hw01.StockMetrics) md.TableSet {
	return md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   [][]string{
			{"avg_daily_return", m.AvgDailyReturn.Fixed(4)},
			{"cumulative_return", m.CumulativeReturn.Fixed(4)},
			{"annualized_volatility", m.AnnualizedVolatility.Fixed(4)},
			{"sharpe_ratio", m.SharpeRatio.Fixed(4)},
		},
	}
}

// StockMarkdown renders a stock report as a markdown document.
func StockMarkdown(r *hw01.StockReport, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Stock Analysis for %s", r.Ticker))
	doc.PlainText(fmt.Sprintf("%d rows from %s to %s, using the %s column.", r.NRows, r.Range.From, r.Range.To, md.Bold(r.PriceColumn)))
	doc.BulletList(
		fmt.Sprintf("First price: %s", Money(r.FirstPrice, opts.currency())),
		fmt.Sprintf("Last price: %s", Money(r.LastPrice, opts.currency())),
	)

	doc.H2("Metrics")
	doc.Table(metricsTable(r.Metrics))

	doc.H2("First Returns")
	table := md.TableSet{
		Header: []string{"Date", "Return"},
		Rows:   [][]string{},
	}
	for _, row := range newStockView(r).First5 {
		table.Rows = append(table.Rows, []string{row.Day.String(), row.Value.Fixed(4)})
	}
	doc.Table(table)

	return doc.String()
}

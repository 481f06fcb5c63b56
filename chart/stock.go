package chart

import (
	"fmt"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/date"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// DefaultBins is the default number of bins of ReturnsHistogram.
const DefaultBins = 30

// PriceMovingAverages plots prices with their trailing moving averages.
//
// Averages are computed over the valid prices available so far, so every
// line starts on the first day.
func PriceMovingAverages(prices *date.History[float64], priceCol string, windows ...int) (*plot.Plot, error) {
	p := timeSeries("Stock Price with Moving Averages", priceCol)
	if err := addLine(p, 0, "price", prices); err != nil {
		return nil, err
	}
	for i, w := range windows {
		if w <= 0 {
			return nil, fmt.Errorf("%w: window must be positive, got %d", hw01.ErrValidation, w)
		}
		if err := addLine(p, i+1, fmt.Sprintf("MA%d", w), hw01.RollingMean(prices, w, 1)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ReturnsHistogram plots the distribution of the valid returns.
func ReturnsHistogram(returns *date.History[float64], bins int) (*plot.Plot, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("%w: bins must be positive, got %d", hw01.ErrValidation, bins)
	}
	var values plotter.Values
	for _, pt := range points(returns) {
		values = append(values, pt.Y)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no return to plot", hw01.ErrValidation)
	}
	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return nil, fmt.Errorf("plotting returns: %w", err)
	}
	h.FillColor = plotutil.Color(0)

	p := plot.New()
	p.Title.Text = "Daily Returns Histogram"
	p.X.Label.Text = "Return"
	p.Y.Label.Text = "Frequency"
	p.Add(h)
	return p, nil
}

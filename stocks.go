package hw01

import (
	"fmt"
	"math"

	"github.com/etnz/hw01/date"
	"gonum.org/v1/gonum/stat"
)

// Stock analysis defaults.
const (
	PriceColumn     = "Adj Close"
	TradingDays     = 252
	DefaultRiskFree = 0.015
)

// valid returns the values of h that are not NaN.
func valid(h *date.History[float64]) []float64 {
	res := make([]float64, 0, h.Len())
	for _, v := range h.Values() {
		if !math.IsNaN(v) {
			res = append(res, v)
		}
	}
	return res
}

// change applies f to every pair of consecutive values. The first entry has
// no prior value and is NaN.
func change(prices *date.History[float64], f func(prev, cur float64) float64) *date.History[float64] {
	days := prices.Days()
	values := prices.Slice()
	res := make([]float64, len(values))
	for i := range values {
		if i == 0 {
			res[i] = math.NaN()
			continue
		}
		// NaN on either side propagates through f.
		res[i] = f(values[i-1], values[i])
	}
	return date.NewHistory(days, res)
}

// DailySimpleReturns returns R[i] = P[i]/P[i-1] - 1, R[0] being NaN.
//
// A missing price makes the two returns around it missing.
func DailySimpleReturns(prices *date.History[float64]) *date.History[float64] {
	return change(prices, func(prev, cur float64) float64 { return cur/prev - 1 })
}

// DailySimpleReturnsPct is the percent change form of DailySimpleReturns:
// (P[i] - P[i-1]) / P[i-1]. Both agree within floating point precision.
func DailySimpleReturnsPct(prices *date.History[float64]) *date.History[float64] {
	return change(prices, func(prev, cur float64) float64 { return (cur - prev) / prev })
}

// LogReturns returns ln P[i] - ln P[i-1], the first entry being NaN.
//
// Their sum over a range is the log of the cumulative gross return.
func LogReturns(prices *date.History[float64]) *date.History[float64] {
	return change(prices, func(prev, cur float64) float64 { return math.Log(cur) - math.Log(prev) })
}

// AverageDailyReturn returns the arithmetic mean of the valid returns.
func AverageDailyReturn(returns *date.History[float64]) Number {
	r := valid(returns)
	if len(r) == 0 {
		return NA()
	}
	return Number(stat.Mean(r, nil))
}

// CumulativeReturn returns P_last/P_first - 1 using the first and last valid
// prices.
func CumulativeReturn(prices *date.History[float64]) Number {
	p := valid(prices)
	if len(p) == 0 {
		return NA()
	}
	return Number(p[len(p)-1]/p[0] - 1)
}

// CumulativeGrowth returns the running product of (1+R) over the valid
// returns. Entries where R is missing are NaN and do not break the product.
func CumulativeGrowth(returns *date.History[float64]) *date.History[float64] {
	growth := 1.0
	res := make([]float64, 0, returns.Len())
	for _, r := range returns.Values() {
		if math.IsNaN(r) {
			res = append(res, math.NaN())
			continue
		}
		growth *= 1 + r
		res = append(res, growth)
	}
	return date.NewHistory(returns.Days(), res)
}

// AnnualizedVolatility returns the sample standard deviation of the valid
// returns scaled by the square root of tradingDays.
func AnnualizedVolatility(returns *date.History[float64], tradingDays int) Number {
	r := valid(returns)
	if len(r) < 2 {
		return NA()
	}
	return Number(stat.StdDev(r, nil) * math.Sqrt(float64(tradingDays)))
}

// SharpeRatio returns the annualized Sharpe ratio of the valid returns for an
// annual risk free rate.
func SharpeRatio(returns *date.History[float64], riskFree float64, tradingDays int) Number {
	r := valid(returns)
	if len(r) < 2 {
		return NA()
	}
	daily := math.Pow(1+riskFree, 1/float64(tradingDays)) - 1
	excess := make([]float64, len(r))
	for i, v := range r {
		excess[i] = v - daily
	}
	mean, std := stat.MeanStdDev(excess, nil)
	if std == 0 || math.IsNaN(std) {
		return NA()
	}
	return Number(mean / std * math.Sqrt(float64(tradingDays)))
}

// RollingMean returns the trailing mean over w observations ending at each
// entry, right aligned.
//
// An entry is defined when its window holds at least minPeriods valid values.
// With minPeriods = w, any missing value in the window makes it missing.
func RollingMean(series *date.History[float64], w, minPeriods int) *date.History[float64] {
	values := series.Slice()
	res := make([]float64, len(values))
	for i := range values {
		sum, n := 0.0, 0
		for _, v := range values[max(0, i-w+1) : i+1] {
			if !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		if n == 0 || n < minPeriods {
			res[i] = math.NaN()
			continue
		}
		res[i] = sum / float64(n)
	}
	return date.NewHistory(series.Days(), res)
}

// MovingAverageColumn is the name of the column holding the w days moving average.
func MovingAverageColumn(w int) string { return fmt.Sprintf("ma_%d", w) }

// RollingMovingAverages returns a copy of t with a "price" column, copied from
// priceCol, and a "ma_<w>" column per window. A moving average is undefined
// until w observations are available.
func RollingMovingAverages(t *Table, priceCol string, windows ...int) (*Table, error) {
	prices, err := t.Column(priceCol)
	if err != nil {
		return nil, err
	}
	res := t.WithHistory("price", prices)
	for _, w := range windows {
		if w <= 0 {
			return nil, fmt.Errorf("%w: window must be positive, got %d", ErrValidation, w)
		}
		res = res.WithHistory(MovingAverageColumn(w), RollingMean(prices, w, w))
	}
	return res, nil
}

// StockMetrics are the headline statistics of a price series.
//
// Fields are in JSON key order.
type StockMetrics struct {
	AnnualizedVolatility Number `json:"annualized_volatility"`
	AvgDailyReturn       Number `json:"avg_daily_return"`
	CumulativeReturn     Number `json:"cumulative_return"`
	SharpeRatio          Number `json:"sharpe_ratio"`
}

// ComputeStockMetrics computes the StockMetrics of a price series.
func ComputeStockMetrics(prices *date.History[float64], riskFree float64, tradingDays int) StockMetrics {
	returns := DailySimpleReturns(prices)
	return StockMetrics{
		AnnualizedVolatility: AnnualizedVolatility(returns, tradingDays),
		AvgDailyReturn:       AverageDailyReturn(returns),
		CumulativeReturn:     CumulativeReturn(prices),
		SharpeRatio:          SharpeRatio(returns, riskFree, tradingDays),
	}
}

package hw01

import (
	"slices"

	"github.com/etnz/hw01/date"
	"gonum.org/v1/gonum/stat"
)

// Weather history columns.
const (
	TemperatureMin = "temperaturemin"
	TemperatureMax = "temperaturemax"
	Precipitation  = "precipitation"
	CelsiusColumn  = "temperaturemax_celsius"
)

// DefaultSliceColumns are the columns averaged by SliceAndMeans when none is given.
var DefaultSliceColumns = []string{TemperatureMax, Precipitation}

// mean returns the arithmetic mean of values, NaN if empty.
func mean(values []float64) Number {
	if len(values) == 0 {
		return NA()
	}
	return Number(stat.Mean(values, nil))
}

// median returns the middle value of values, or the mean of the two middle
// values for an even count, NaN if empty.
func median(values []float64) Number {
	n := len(values)
	if n == 0 {
		return NA()
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if n%2 == 1 {
		return Number(sorted[n/2])
	}
	return Number((sorted[n/2-1] + sorted[n/2]) / 2)
}

// validColumn returns the non missing values of a column.
func validColumn(t *Table, name string) ([]float64, error) {
	h, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return valid(h), nil
}

// MinMaxSummary returns the mean and median of the min and max temperatures,
// missing values excluded. Means are rounded to 4 decimals.
//
// Keys are "mean_<column>" and "median_<column>".
func MinMaxSummary(t *Table) (map[string]Number, error) {
	summary := make(map[string]Number, 4)
	for _, name := range []string{TemperatureMin, TemperatureMax} {
		values, err := validColumn(t, name)
		if err != nil {
			return nil, err
		}
		summary["mean_"+name] = mean(values).Round(4)
		summary["median_"+name] = median(values)
	}
	return summary, nil
}

// FahrenheitToCelsius converts a temperature. NaN stays NaN.
func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

// AddCelsiusColumn returns a copy of t with the max temperature converted to
// Celsius in a "temperaturemax_celsius" column.
func AddCelsiusColumn(t *Table) (*Table, error) {
	tmax, err := t.Column(TemperatureMax)
	if err != nil {
		return nil, err
	}
	return t.WithHistory(CelsiusColumn, tmax.Map(FahrenheitToCelsius)), nil
}

// SliceAndMeans returns the mean of each column over the rows within r,
// boundaries included. columns defaults to DefaultSliceColumns.
//
// An empty range yields NaN means.
func SliceAndMeans(t *Table, r date.Range, columns ...string) (map[string]Number, error) {
	if len(columns) == 0 {
		columns = DefaultSliceColumns
	}
	slice := t.Between(r)
	means := make(map[string]Number, len(columns))
	for _, name := range columns {
		values, err := validColumn(slice, name)
		if err != nil {
			return nil, err
		}
		means[name] = mean(values)
	}
	return means, nil
}

// SeasonSummary holds the temperature statistics of one season of a season-year.
//
// Fields are in JSON key order.
type SeasonSummary struct {
	DateMax              date.Date `json:"date_max"`
	DateMin              date.Date `json:"date_min"`
	MeanTemperatureMax   Number    `json:"mean_temperaturemax"`
	MeanTemperatureMin   Number    `json:"mean_temperaturemin"`
	MedianTemperatureMax Number    `json:"median_temperaturemax"`
	MedianTemperatureMin Number    `json:"median_temperaturemin"`
}

// Range returns the observed date range of the season.
func (s SeasonSummary) Range() date.Range { return date.Range{From: s.DateMin, To: s.DateMax} }

// Seasonal maps a season-year to the summaries of its non empty seasons.
type Seasonal map[int]map[date.Season]SeasonSummary

// Years returns the season-years in chronological order.
func (s Seasonal) Years() []int {
	years := make([]int, 0, len(s))
	for y := range s {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}

// SeasonalSummaries partitions the rows of t into seasons, December being
// attributed to the winter of the following year, and summarizes every non
// empty season of every season-year.
func SeasonalSummaries(t *Table) (Seasonal, error) {
	for _, name := range []string{TemperatureMin, TemperatureMax} {
		if !t.Has(name) {
			return nil, missingColumn(name)
		}
	}
	res := make(Seasonal)
	for _, on := range t.days {
		year, season := date.SeasonOf(on)
		if _, done := res[year][season]; done {
			continue
		}
		bucket := t.Between(date.SeasonRange(year, season))
		tmin, _ := validColumn(bucket, TemperatureMin)
		tmax, _ := validColumn(bucket, TemperatureMax)
		span := bucket.Span()
		if res[year] == nil {
			res[year] = make(map[date.Season]SeasonSummary, len(date.Seasons))
		}
		res[year][season] = SeasonSummary{
			DateMax:              span.To,
			DateMin:              span.From,
			MeanTemperatureMax:   mean(tmax),
			MeanTemperatureMin:   mean(tmin),
			MedianTemperatureMax: median(tmax),
			MedianTemperatureMin: median(tmin),
		}
	}
	return res, nil
}

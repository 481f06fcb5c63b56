package chart

import (
	"github.com/etnz/hw01"
	"gonum.org/v1/plot"
)

// TemperatureMax plots the max temperature in Fahrenheit and Celsius.
func TemperatureMax(t *hw01.Table) (*plot.Plot, error) {
	t, err := hw01.AddCelsiusColumn(t)
	if err != nil {
		return nil, err
	}
	p := timeSeries("Max Temperature (F & C)", "Temperature")
	for i, line := range []struct{ label, column string }{
		{"tmax (F)", hw01.TemperatureMax},
		{"tmax (C)", hw01.CelsiusColumn},
	} {
		h, err := t.Column(line.column)
		if err != nil {
			return nil, err
		}
		if err := addLine(p, i, line.label, h); err != nil {
			return nil, err
		}
	}
	return p, nil
}

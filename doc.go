// Package hw01 computes descriptive statistics over stock price and weather
// history CSV files.
//
// The core functionalities include:
//   - Loading: reading a CSV file into a Table, a sorted date index with
//     named float columns where NaN marks a missing observation.
//   - Stock statistics: daily simple and log returns, cumulative return,
//     rolling moving averages, annualized volatility and Sharpe ratio.
//   - Weather statistics: min/max temperature summaries, Fahrenheit to
//     Celsius conversion, date range slicing and seasonal aggregation.
//   - Reports: StockReport, WeatherReport and Comparison gather the results
//     of a command and encode them as JSON with sorted keys, missing values
//     being encoded as null.
//
// Every operation is a pure function of its input: tables and histories are
// never modified in place, derivations return new values.
//
// This package serves as the foundational logic for the `hw01` command-line
// tool.
package hw01

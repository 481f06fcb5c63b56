package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/date"
	md "github.com/nao1215/markdown"
)

// summaryKeys is the display order of a weather summary.
var summaryKeys = []string{
	"mean_" + hw01.TemperatureMin,
	"median_" + hw01.TemperatureMin,
	"mean_" + hw01.TemperatureMax,
	"median_" + hw01.TemperatureMax,
}

type seasonRow struct {
	Season  date.Season
	Summary hw01.SeasonSummary
}

type yearRow struct {
	Year    int
	Seasons []seasonRow
}

type weatherView struct {
	*hw01.WeatherReport
	Summary     []entry
	SlicedMeans []entry
	Years       []yearRow
}

func newWeatherView(r *hw01.WeatherReport) weatherView {
	v := weatherView{WeatherReport: r}
	for _, k := range summaryKeys {
		if n, ok := r.Summary[k]; ok {
			v.Summary = append(v.Summary, entry{Key: k, Value: n})
		}
	}
	if r.SlicedMeans != nil {
		for _, k := range r.SlicedColumns {
			v.SlicedMeans = append(v.SlicedMeans, entry{Key: k, Value: r.SlicedMeans[k]})
		}
	}
	for _, y := range r.Seasonal.Years() {
		row := yearRow{Year: y}
		for _, s := range date.Seasons {
			if summary, ok := r.Seasonal[y][s]; ok {
				row.Seasons = append(row.Seasons, seasonRow{Season: s, Summary: summary})
			}
		}
		v.Years = append(v.Years, row)
	}
	return v
}

// WeatherText renders a weather report as plain text.
func WeatherText(r *hw01.WeatherReport, opts Options) string {
	return renderTemplate("weather", "weather.txt", commonPartials(), opts, newWeatherView(r))
}

// WeatherMarkdown renders a weather report as a markdown document.
func WeatherMarkdown(r *hw01.WeatherReport, opts Options) string {
	v := newWeatherView(r)
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Weather Analysis")
	doc.PlainText(fmt.Sprintf("%d rows from %s to %s.", r.NRows, r.Range.From, r.Range.To))

	doc.H2("Summary")
	summary := md.TableSet{
		Header: []string{"Statistic", "Value"},
		Rows:   [][]string{},
	}
	for _, e := range v.Summary {
		summary.Rows = append(summary.Rows, []string{e.Key, e.Value.Fixed(summaryPlaces(e.Key))})
	}
	doc.Table(summary)

	if len(v.SlicedMeans) > 0 {
		doc.H2(fmt.Sprintf("Means from %s to %s", r.Slice.From, r.Slice.To))
		sliced := md.TableSet{
			Header: []string{"Column", "Mean"},
			Rows:   [][]string{},
		}
		for _, e := range v.SlicedMeans {
			sliced.Rows = append(sliced.Rows, []string{e.Key, e.Value.Fixed(4)})
		}
		doc.Table(sliced)
	}

	if len(v.Years) > 0 {
		doc.H2("Seasons")
		seasons := md.TableSet{
			Header: []string{"Year", "Season", "Dates", "Mean Min", "Median Min", "Mean Max", "Median Max"},
			Rows:   [][]string{},
		}
		for _, y := range v.Years {
			for _, s := range y.Seasons {
				seasons.Rows = append(seasons.Rows, []string{
					strconv.Itoa(y.Year),
					s.Season.String(),
					s.Summary.Range().String(),
					s.Summary.MeanTemperatureMin.Fixed(4),
					s.Summary.MedianTemperatureMin.Fixed(4),
					s.Summary.MeanTemperatureMax.Fixed(4),
					s.Summary.MedianTemperatureMax.Fixed(4),
				})
			}
		}
		doc.Table(seasons)
	}

	return doc.String()
}

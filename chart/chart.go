// Package chart draws hw01 series as PNG images.
//
// Charts are built as gonum plots, so that callers can tweak them, and
// written with WritePNG or SavePNG.
package chart

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/etnz/hw01"
	"github.com/etnz/hw01/date"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Image defaults.
const (
	DefaultDPI    = 120
	DefaultWidth  = 6.4 // inches
	DefaultHeight = 4.8 // inches
)

// Options controls the size of the image.
type Options struct {
	DPI    int
	Width  float64 // inches
	Height float64 // inches
}

func (o Options) withDefaults() Options {
	o.DPI = cmp.Or(o.DPI, DefaultDPI)
	o.Width = cmp.Or(o.Width, DefaultWidth)
	o.Height = cmp.Or(o.Height, DefaultHeight)
	return o
}

// WritePNG draws p as a PNG image into w.
func WritePNG(w io.Writer, p *plot.Plot, opts Options) error {
	opts = opts.withDefaults()
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// SavePNG writes p to a PNG file, replacing it if it exists.
func SavePNG(path string, p *plot.Plot, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, p, opts); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return f.Close()
}

// points returns the finite entries of h, dates as unix seconds.
func points(h *date.History[float64]) plotter.XYs {
	pts := make(plotter.XYs, 0, h.Len())
	for day, v := range h.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(day.Time().Unix()), Y: v})
	}
	return pts
}

// timeSeries returns a plot with a date axis.
func timeSeries(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = plot.TimeTicks{Format: date.DateFormat}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// addLine adds the series h to p, colored by its rank i.
func addLine(p *plot.Plot, i int, label string, h *date.History[float64]) error {
	pts := points(h)
	if len(pts) == 0 {
		return fmt.Errorf("%w: no value to plot for %s", hw01.ErrValidation, label)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotting %s: %w", label, err)
	}
	line.Color = plotutil.Color(i)
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

// Package plot renders a scatter of the samples with the fitted line.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/KaramelBytes/regress-cli/internal/dataset"
	"github.com/KaramelBytes/regress-cli/internal/regression"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Options controls chart appearance.
type Options struct {
	Title  string
	Width  int
	Height int
}

// DefaultOptions mirrors a 10x8 inch figure at 100 dpi.
func DefaultOptions() Options {
	return Options{
		Title:  "Linear Regression",
		Width:  1000,
		Height: 800,
	}
}

var (
	pointColor = drawing.ColorFromHex("1f77b4").WithAlpha(153)
	lineColor  = drawing.ColorFromHex("8b0000")
	gridColor  = drawing.ColorFromHex("d9d9d9")
)

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New("plot: dataset is empty")

// Render writes a PNG chart of ds and fit to w.
func Render(w io.Writer, ds *dataset.Dataset, fit regression.Result, opt Options) error {
	if ds.Len() == 0 {
		return ErrEmpty
	}
	def := DefaultOptions()
	if opt.Width <= 0 {
		opt.Width = def.Width
	}
	if opt.Height <= 0 {
		opt.Height = def.Height
	}

	xs, ys := ds.XS(), ds.YS()
	xr := span(xs)
	lineXs := []float64{xr.Min, xr.Max}
	lineYs := []float64{fit.Predict(xr.Min), fit.Predict(xr.Max)}
	yr := span(append(append([]float64{}, ys...), lineYs...))

	grid := chart.Style{StrokeColor: gridColor, StrokeWidth: 1}
	ch := chart.Chart{
		Title:      opt.Title,
		Width:      opt.Width,
		Height:     opt.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           "X Values",
			Range:          &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           "Y Values",
			Range:          &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
			GridMajorStyle: grid,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("Data points (%d)", ds.Len()),
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
					DotColor:    pointColor,
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("Linear fit (R² = %.4f)", fit.R2),
				XValues: lineXs,
				YValues: lineYs,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{
					XValue: xr.Min + 0.05*(xr.Max-xr.Min),
					YValue: yr.Min + 0.95*(yr.Max-yr.Min),
					Label:  fit.Equation(),
				}},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

type bounds struct{ Min, Max float64 }

// span returns the value range, padded when degenerate so the axis is drawable.
func span(vals []float64) bounds {
	b := bounds{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range vals {
		b.Min = math.Min(b.Min, v)
		b.Max = math.Max(b.Max, v)
	}
	if b.Min == b.Max {
		pad := math.Max(math.Abs(b.Min)*0.05, 1)
		b.Min -= pad
		b.Max += pad
	}
	return b
}

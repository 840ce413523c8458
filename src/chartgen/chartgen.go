// Package chartgen renders perflog sample series as annotated line charts.
//
// Rendering is delegated to go-chart; this package only assembles series,
// axis ranges and the max-value callout, and encodes the result as PNG.
// Output is deterministic: the same series and options produce byte
// identical PNGs.
package chartgen

import (
	"bytes"
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"perfplot/src/perflog"
)

// Default chart geometry.
const (
	DefaultWidth  = 1100
	DefaultHeight = 340
)

// Options control chart geometry and the callout placement.
type Options struct {
	Width  int
	Height int
	Title  string
	// Callout text anchor in plot-fraction coordinates: (0,0) is the
	// bottom-left corner of the plot area, (1,1) the top-right.
	AnchorX float64
	AnchorY float64
}

// DefaultOptions returns the geometry and callout anchor used by the
// experiment plots.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Height: DefaultHeight, AnchorX: 0.6, AnchorY: 1.0}
}

// BuildChart assembles the line chart for s: one continuous series in file
// order plus a callout marking the maximum value. An empty series is an
// error before any chart exists.
func BuildChart(s *perflog.Series, opts Options) (chart.Chart, error) {
	maxSmp, _, err := s.Max()
	if err != nil {
		return chart.Chart{}, err
	}
	xs, ys := s.XYValues()
	// go-chart needs a non-zero x span; pad single-sample series with a
	// flat neighbor. The callout still targets the real sample.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	xMin, xMax := minMax(xs)
	if xMax <= xMin {
		xMax = xMin + 1
	}
	yMin, yMax := minMax(ys)
	nYMin, nYMax := niceAxisBounds(yMin, yMax)
	xr := chart.ContinuousRange{Min: xMin, Max: xMax}
	yr := chart.ContinuousRange{Min: nYMin, Max: nYMax}

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Range: &chart.ContinuousRange{Min: xr.Min, Max: xr.Max}},
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: yr.Min, Max: yr.Max}, Ticks: niceTicks(yr.Min, yr.Max, 6)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "value",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 1.5},
			},
		},
	}
	ch.Elements = []chart.Renderable{maxCallout(maxSmp, xr, yr, opts)}
	return ch, nil
}

// RenderPNG builds the chart for s and encodes it as PNG.
func RenderPNG(s *perflog.Series, opts Options) ([]byte, error) {
	ch, err := BuildChart(s, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePNG renders s and writes the PNG to path, overwriting any existing
// file.
func SavePNG(path string, s *perflog.Series, opts Options) error {
	b, err := RenderPNG(s, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	perflog.Infof("wrote chart to %s (%d bytes)", path, len(b))
	return nil
}

package chartgen

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"perfplot/src/perflog"
)

// Callout styling follows the original experiment plots: yellow square box
// with a black border, red connector of width 2, text right-aligned and
// vertically centered on the anchor.
var (
	calloutFill    = drawing.Color{R: 255, G: 255, B: 0, A: 255}
	calloutBorder  = chart.ColorBlack
	connectorColor = chart.ColorRed
)

const (
	connectorWidth = 2.0
	calloutPad     = 4
	arrowHeadLen   = 8.0
)

// annotationLabel formats the callout text. Inputs are integers, so the
// fractional digits are always zero; the format is kept for output
// compatibility with earlier runs.
func annotationLabel(s perflog.Sample) string {
	return fmt.Sprintf("x=%.3f, y=%.3f", float64(s.X), float64(s.Y))
}

// dataToPx maps a data point to canvas pixels through the ranges the chart
// axes were built with. Pixel y grows downward.
func dataToPx(x, y float64, xr, yr chart.ContinuousRange, cb chart.Box) (int, int) {
	px := cb.Left + int(math.Round(float64(cb.Width())*(x-xr.Min)/(xr.Max-xr.Min)))
	py := cb.Top + int(math.Round(float64(cb.Height())*(yr.Max-y)/(yr.Max-yr.Min)))
	return px, py
}

// fractionToPx maps plot-fraction coordinates ((0,0) bottom-left, (1,1)
// top-right) to canvas pixels.
func fractionToPx(fx, fy float64, cb chart.Box) (int, int) {
	ax := cb.Left + int(math.Round(float64(cb.Width())*fx))
	ay := cb.Bottom - int(math.Round(float64(cb.Height())*fy))
	return ax, ay
}

// maxCallout returns a renderable that draws the max-value callout over the
// finished plot, in the manner of chart.Legend.
func maxCallout(pt perflog.Sample, xr, yr chart.ContinuousRange, opts Options) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, chartDefaults chart.Style) {
		label := annotationLabel(pt)
		px, py := dataToPx(float64(pt.X), float64(pt.Y), xr, yr, canvasBox)
		ax, ay := fractionToPx(opts.AnchorX, opts.AnchorY, canvasBox)

		// connector first so the box covers its tail
		r.SetStrokeColor(connectorColor)
		r.SetStrokeWidth(connectorWidth)
		r.MoveTo(ax, ay)
		r.LineTo(px, py)
		r.Stroke()
		drawArrowHead(r, ax, ay, px, py)

		textStyle := chart.Style{FontSize: 9, FontColor: chart.ColorBlack}.InheritFrom(chartDefaults)
		textStyle.GetTextOptions().WriteToRenderer(r)
		tb := r.MeasureText(label)
		box := chart.Box{
			Left:   ax - tb.Width() - calloutPad,
			Right:  ax + calloutPad,
			Top:    ay - tb.Height()/2 - calloutPad,
			Bottom: ay + tb.Height()/2 + calloutPad,
		}
		chart.Draw.Box(r, box, chart.Style{FillColor: calloutFill, StrokeColor: calloutBorder, StrokeWidth: 1})
		textStyle.GetTextOptions().WriteToRenderer(r)
		r.Text(label, ax-tb.Width(), ay+tb.Height()/2)
	}
}

// drawArrowHead strokes a two-segment head at the connector tip, pointing
// away from the anchor.
func drawArrowHead(r chart.Renderer, fromX, fromY, tipX, tipY int) {
	if fromX == tipX && fromY == tipY {
		return
	}
	th := math.Atan2(float64(tipY-fromY), float64(tipX-fromX))
	for _, d := range []float64{-0.45, 0.45} {
		bx := tipX - int(math.Round(arrowHeadLen*math.Cos(th+d)))
		by := tipY - int(math.Round(arrowHeadLen*math.Sin(th+d)))
		r.MoveTo(tipX, tipY)
		r.LineTo(bx, by)
		r.Stroke()
	}
}

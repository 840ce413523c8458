package chartgen

import (
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"
)

func TestDataToPx_Corners(t *testing.T) {
	cb := chart.Box{Left: 100, Right: 300, Top: 50, Bottom: 150}
	xr := chart.ContinuousRange{Min: 0, Max: 10}
	yr := chart.ContinuousRange{Min: 0, Max: 100}

	px, py := dataToPx(0, 0, xr, yr, cb)
	if px != 100 || py != 150 {
		t.Fatalf("data min corner: got (%d,%d) want (100,150)", px, py)
	}
	px, py = dataToPx(10, 100, xr, yr, cb)
	if px != 300 || py != 50 {
		t.Fatalf("data max corner: got (%d,%d) want (300,50)", px, py)
	}
	px, py = dataToPx(5, 50, xr, yr, cb)
	if px != 200 || py != 100 {
		t.Fatalf("data center: got (%d,%d) want (200,100)", px, py)
	}
}

func TestFractionToPx_AnchorConvention(t *testing.T) {
	cb := chart.Box{Left: 100, Right: 300, Top: 50, Bottom: 150}

	// (0,0) is the bottom-left of the plot area
	ax, ay := fractionToPx(0, 0, cb)
	if ax != 100 || ay != 150 {
		t.Fatalf("bottom-left: got (%d,%d) want (100,150)", ax, ay)
	}
	// (1,1) is the top-right
	ax, ay = fractionToPx(1, 1, cb)
	if ax != 300 || ay != 50 {
		t.Fatalf("top-right: got (%d,%d) want (300,50)", ax, ay)
	}
	// default anchor (0.6, 1.0) sits on the top edge at 60% width
	ax, ay = fractionToPx(0.6, 1.0, cb)
	if ax != 220 || ay != 50 {
		t.Fatalf("default anchor: got (%d,%d) want (220,50)", ax, ay)
	}
}

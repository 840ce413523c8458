package chartgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"perfplot/src/perflog"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func parseSeries(t *testing.T, in string) *perflog.Series {
	t.Helper()
	s, err := perflog.ParseReader(strings.NewReader(in))
	require.NoError(t, err)
	return s
}

func TestAnnotationLabel(t *testing.T) {
	assert.Equal(t, "x=5.000, y=99.000", annotationLabel(perflog.Sample{X: 5, Y: 99}))
	assert.Equal(t, "x=-1.000, y=0.000", annotationLabel(perflog.Sample{X: -1, Y: 0}))
}

func TestBuildChart_EmptySeriesFails(t *testing.T) {
	_, err := BuildChart(&perflog.Series{}, DefaultOptions())
	require.ErrorIs(t, err, perflog.ErrNoSamples)
}

func TestRenderPNG_Signature(t *testing.T) {
	s := parseSeries(t, "time: a 1,x 0 0 10\ntime: a 2,x 0 0 50\ntime: a 3,x 0 0 30\n")
	b, err := RenderPNG(s, DefaultOptions())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(b, pngMagic), "output is not a PNG")
}

func TestRenderPNG_Deterministic(t *testing.T) {
	s := parseSeries(t, "time: a 1,x 0 0 10\ntime: a 2,x 0 0 50\ntime: a 3,x 0 0 30\n")
	first, err := RenderPNG(s, DefaultOptions())
	require.NoError(t, err)
	second, err := RenderPNG(s, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second, "two renders of the same series must be byte identical")
}

func TestRenderPNG_SingleSample(t *testing.T) {
	// A single matching line still renders; the x span is padded internally.
	s := parseSeries(t, "time: 2023-01-01 5,abc 1 2 99 extra\n")
	b, err := RenderPNG(s, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, pngMagic))
}

func TestSavePNG_Overwrites(t *testing.T) {
	s := parseSeries(t, "time: a 1,x 0 0 10\ntime: a 2,x 0 0 50\n")
	path := t.TempDir() + "/out.png"
	require.NoError(t, SavePNG(path, s, DefaultOptions()))
	require.NoError(t, SavePNG(path, s, DefaultOptions()), "second save must overwrite silently")
}

func TestBuildChart_SeriesOrderIsFileOrder(t *testing.T) {
	// x values out of order must stay out of order (no sorting).
	s := parseSeries(t, "time: a 3,x 0 0 30\ntime: a 1,x 0 0 10\n")
	ch, err := BuildChart(s, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, ch.Series, 1)
	cs, ok := ch.Series[0].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, []float64{3, 1}, cs.XValues)
	assert.Equal(t, []float64{30, 10}, cs.YValues)
}

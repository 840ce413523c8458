// Package perflog parses scheduler performance logs into sample series.
//
// A line is relevant when its left-stripped content starts with the literal
// token "time". Relevant lines carry the sample position in field 2 (the
// part before the first comma) and the measured value in field 5, e.g.:
//
//	time: 2023-01-01 5,olb 1 2 99
//
// Field positions are a contract with the upstream log producer. A relevant
// line that does not satisfy the contract is a hard error: there is no
// recovery or partial-result handling, by the nature of the single-shot
// workflow this feeds.
package perflog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Line grammar constants. Fields are zero-based whitespace-delimited tokens.
const (
	// LinePrefix marks a relevant line (after left-stripping whitespace).
	LinePrefix = "time"
	// TimeField holds "<x>,<rest>"; the part before the comma is the x value.
	TimeField = 2
	// ValueField holds the y value as a plain integer token.
	ValueField = 5

	minFields = ValueField + 1
)

// DefaultLogFile is the conventional output name of the experiment runs.
const DefaultLogFile = "performance_1000.txt"

// ErrNoSamples is returned when an operation needs at least one sample.
var ErrNoSamples = errors.New("perflog: no samples")

// Sample is one (x, y) measurement taken from a relevant log line.
type Sample struct {
	X int
	Y int
}

// Series is an ordered sequence of samples in file order. Order is never
// changed after parsing; chart rendering connects points in this order.
type Series struct {
	Samples []Sample
}

// Stats summarizes a series for reporting.
type Stats struct {
	Count  int
	MinY   int
	MaxY   int
	MeanY  float64
	XAtMax int
}

// ParseFile opens path and parses it. A missing file surfaces the os.Open
// error untranslated so callers can test with errors.Is(err, os.ErrNotExist).
func ParseFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Infof("parsed %d samples from %s", s.Len(), path)
	return s, nil
}

// ParseReader scans r line by line and collects one sample per relevant
// line. Tokens are converted to integers inline; the first malformed
// relevant line aborts the parse.
func ParseReader(r io.Reader) (*Series, error) {
	defer TimeTrack(time.Now(), "parse")
	s := &Series{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if !strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), LinePrefix) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < minFields {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", lineNo, minFields, len(fields))
		}
		xTok, _, _ := strings.Cut(fields[TimeField], ",")
		x, err := strconv.Atoi(xTok)
		if err != nil {
			return nil, fmt.Errorf("line %d: time field %q: %w", lineNo, xTok, err)
		}
		y, err := strconv.Atoi(fields[ValueField])
		if err != nil {
			return nil, fmt.Errorf("line %d: value field %q: %w", lineNo, fields[ValueField], err)
		}
		s.Samples = append(s.Samples, Sample{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo, err)
	}
	Debugf("scanned %d lines, kept %d samples", lineNo, s.Len())
	return s, nil
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.Samples) }

// Max returns the sample with the maximum y value and its index. Ties break
// toward the earliest index. Returns ErrNoSamples on an empty series.
func (s *Series) Max() (Sample, int, error) {
	if len(s.Samples) == 0 {
		return Sample{}, 0, ErrNoSamples
	}
	best := 0
	for i := 1; i < len(s.Samples); i++ {
		if s.Samples[i].Y > s.Samples[best].Y {
			best = i
		}
	}
	return s.Samples[best], best, nil
}

// Stats computes summary statistics over the series.
func (s *Series) Stats() (Stats, error) {
	maxSmp, _, err := s.Max()
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		Count:  len(s.Samples),
		MinY:   s.Samples[0].Y,
		MaxY:   maxSmp.Y,
		XAtMax: maxSmp.X,
	}
	sum := 0
	for _, smp := range s.Samples {
		if smp.Y < st.MinY {
			st.MinY = smp.Y
		}
		sum += smp.Y
	}
	st.MeanY = float64(sum) / float64(st.Count)
	return st, nil
}

// XYValues returns the series as parallel float64 slices in file order,
// suitable for chart series input.
func (s *Series) XYValues() ([]float64, []float64) {
	xs := make([]float64, len(s.Samples))
	ys := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		xs[i] = float64(smp.X)
		ys[i] = float64(smp.Y)
	}
	return xs, ys
}

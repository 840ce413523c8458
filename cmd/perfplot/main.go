// perfplot renders a scheduler performance log as an annotated line chart.
//
// Default behavior matches the original experiment workflow: read
// performance_1000.txt, show the chart in a window, and write
// plot_OLB_100000.png once the window is closed. -headless skips the window
// and writes the file immediately.
package main

import (
	"flag"
	"fmt"
	"os"

	"perfplot/src/chartgen"
	"perfplot/src/perflog"
)

// DefaultOutputFile preserves the historical output name of the experiment
// scripts.
const DefaultOutputFile = "plot_OLB_100000.png"

func main() {
	var (
		file     string
		out      string
		cfgPath  string
		title    string
		logLevel string
		headless bool
		hints    bool
	)
	flag.StringVar(&file, "file", perflog.DefaultLogFile, "Path to the performance log")
	flag.StringVar(&out, "out", DefaultOutputFile, "Output PNG path (overwritten)")
	flag.StringVar(&cfgPath, "config", "", "Optional YAML chart options file")
	flag.StringVar(&title, "title", "", "Chart title (overrides config)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.BoolVar(&headless, "headless", false, "Skip the interactive window and write the PNG immediately")
	flag.BoolVar(&hints, "hints", false, "Overlay a short explanation of the callout in the window")
	flag.Parse()

	perflog.SetLogLevel(logLevel)

	if err := run(file, out, cfgPath, title, headless, hints); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, out, cfgPath, title string, headless, hints bool) error {
	opts, err := chartgen.LoadOptions(cfgPath)
	if err != nil {
		return err
	}
	if title != "" {
		opts.Title = title
	}
	series, err := perflog.ParseFile(file)
	if err != nil {
		return err
	}
	pngBytes, err := chartgen.RenderPNG(series, opts)
	if err != nil {
		return err
	}
	if !headless {
		// Blocks until the window is closed; the PNG is written afterwards,
		// matching the original show-then-save flow.
		if err := showWindow(series, pngBytes, hints); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, pngBytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	perflog.Infof("wrote %s (%d samples)", out, series.Len())
	return nil
}

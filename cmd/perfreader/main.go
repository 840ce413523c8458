// perfreader prints summary statistics for a performance log without
// rendering anything.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"perfplot/src/perflog"
)

func main() {
	var file string
	var logLevel string
	flag.StringVar(&file, "file", perflog.DefaultLogFile, "Path to the performance log")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	flag.Parse()

	perflog.SetLogLevel(logLevel)

	series, err := perflog.ParseFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	stats, err := series.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Total samples: %d\n", stats.Count)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"metric", "value"})
	t.AppendRow(table.Row{"min", stats.MinY})
	t.AppendRow(table.Row{"max", stats.MaxY})
	t.AppendRow(table.Row{"mean", fmt.Sprintf("%.2f", stats.MeanY)})
	t.AppendRow(table.Row{"x at max", stats.XAtMax})
	t.Render()
}

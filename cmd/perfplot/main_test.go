package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"perfplot/src/perflog"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "performance.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestRun_HeadlessWritesPNG(t *testing.T) {
	logPath := writeLog(t, "time: a 1,x 0 0 10\ntime: a 2,x 0 0 50\n")
	out := filepath.Join(t.TempDir(), "plot.png")
	if err := run(logPath, out, "", "", true, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(b) < 8 || b[0] != 0x89 || string(b[1:4]) != "PNG" {
		t.Fatalf("output is not a PNG (%d bytes)", len(b))
	}
}

func TestRun_HeadlessOverwritesExistingOutput(t *testing.T) {
	logPath := writeLog(t, "time: a 1,x 0 0 10\ntime: a 2,x 0 0 50\n")
	out := filepath.Join(t.TempDir(), "plot.png")
	if err := os.WriteFile(out, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed output: %v", err)
	}
	if err := run(logPath, out, "", "", true, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, _ := os.ReadFile(out)
	if string(b) == "stale" {
		t.Fatalf("output was not overwritten")
	}
}

func TestRun_MissingInputFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plot.png")
	err := run(filepath.Join(t.TempDir(), "missing.txt"), out, "", "", true, false)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	if _, serr := os.Stat(out); !errors.Is(serr, os.ErrNotExist) {
		t.Fatalf("no output should be written on parse failure")
	}
}

func TestRun_NoMatchingLinesFails(t *testing.T) {
	logPath := writeLog(t, "nothing relevant here\n")
	out := filepath.Join(t.TempDir(), "plot.png")
	err := run(logPath, out, "", "", true, false)
	if !errors.Is(err, perflog.ErrNoSamples) {
		t.Fatalf("expected ErrNoSamples, got %v", err)
	}
}

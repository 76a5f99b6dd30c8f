package utils

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"elevsim/src/config"
	"elevsim/src/types"
)

func TestWaitingAt(t *testing.T) {
	requests := []types.Request{
		types.MustRequest(0, 2, 5),
		types.MustRequest(3, 2, 1),
		types.MustRequest(0, 4, 1),
		types.MustRequest(0, -1, -1),
	}
	requests[2].MarkBoarded()
	if got := WaitingAt(requests, 2, 1); got != 1 {
		t.Errorf("floor 2 at tick 1: got %d waiting, want 1", got)
	}
	if got := WaitingAt(requests, 2, 3); got != 2 {
		t.Errorf("floor 2 at tick 3: got %d waiting, want 2", got)
	}
	if got := WaitingAt(requests, 4, 3); got != 0 {
		t.Errorf("floor 4: got %d waiting, want 0 once boarded", got)
	}
}

func TestInitLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "sim.log")
	runID, closeLog, err := InitLogger(&buf, slog.LevelInfo, path)
	if err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	if len(runID) != config.RunIDLength {
		t.Errorf("run ID %q has length %d, want %d", runID, len(runID), config.RunIDLength)
	}

	slog.Debug("hidden")
	slog.Info("Boarded", "floor", 3)
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record written at info level")
	}
	if !regexp.MustCompile(`time=\d\d:\d\d:\d\d `).MatchString(out) {
		t.Errorf("time not in short form: %s", out)
	}
	if !strings.Contains(out, "source=utils_test.go:") || !strings.Contains(out, "run="+runID) {
		t.Errorf("missing source or run attribute: %s", out)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(file) != out {
		t.Errorf("log file differs from writer output:\n%s\n%s", file, out)
	}
}

func TestInitLoggerBadPath(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	_, _, err := InitLogger(&bytes.Buffer{}, slog.LevelInfo, filepath.Join(t.TempDir(), "missing", "sim.log"))
	if err == nil {
		t.Error("expected an error for a log file in a missing directory")
	}
}

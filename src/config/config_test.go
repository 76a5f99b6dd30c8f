package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "ELEVSIM_FLOORS=12\nELEVSIM_TICKS=40\nELEVSIM_TICK_INTERVAL=10ms\nELEVSIM_LOG_LEVEL=debug\nELEVSIM_MAINTENANCE=true\nELEVSIM_LOG_FILE=sim.log\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{
		NumFloors:    12,
		SimTicks:     40,
		TickInterval: 10 * time.Millisecond,
		LogLevel:     slog.LevelDebug,
		LogFile:      "sim.log",
		Maintenance:  true,
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestApplyRejectsBadValues(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvFloors: "seven"},
		{EnvTicks: "1.5"},
		{EnvTickInterval: "fast"},
		{EnvLogLevel: "loud"},
		{EnvMaintenance: "sometimes"},
	} {
		if _, err := Apply(Default(), env); err == nil {
			t.Errorf("%v: expected an error", env)
		}
	}
}

func TestApplyKeepsUnsetFields(t *testing.T) {
	cfg, err := Apply(Default(), map[string]string{EnvTicks: "99"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SimTicks != 99 || cfg.NumFloors != NumFloors || cfg.TickInterval != TickInterval {
		t.Errorf("got %+v", cfg)
	}
}

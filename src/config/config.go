package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	NumFloors    = 7
	SimTicks     = 20
	TickInterval = 250 * time.Millisecond
	DwellTicks   = 1
	RunIDLength  = 8
)

// Environment keys read from the .env file.
const (
	EnvFloors       = "ELEVSIM_FLOORS"
	EnvTicks        = "ELEVSIM_TICKS"
	EnvTickInterval = "ELEVSIM_TICK_INTERVAL"
	EnvLogLevel     = "ELEVSIM_LOG_LEVEL"
	EnvLogFile      = "ELEVSIM_LOG_FILE"
	EnvMaintenance  = "ELEVSIM_MAINTENANCE"
)

type Config struct {
	NumFloors    int
	SimTicks     int
	TickInterval time.Duration
	LogLevel     slog.Level
	LogFile      string
	Maintenance  bool
}

func Default() Config {
	return Config{
		NumFloors:    NumFloors,
		SimTicks:     SimTicks,
		TickInterval: TickInterval,
		LogLevel:     slog.LevelInfo,
	}
}

// Load reads overrides from a .env file. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	return Apply(cfg, env)
}

// Apply overlays the known keys of env onto cfg.
func Apply(cfg Config, env map[string]string) (Config, error) {
	var err error
	if v, ok := env[EnvFloors]; ok {
		if cfg.NumFloors, err = strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvFloors, err)
		}
	}
	if v, ok := env[EnvTicks]; ok {
		if cfg.SimTicks, err = strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTicks, err)
		}
	}
	if v, ok := env[EnvTickInterval]; ok {
		if cfg.TickInterval, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
	}
	if v, ok := env[EnvLogLevel]; ok {
		if err = cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v, ok := env[EnvMaintenance]; ok {
		if cfg.Maintenance, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMaintenance, err)
		}
	}
	if v, ok := env[EnvLogFile]; ok {
		cfg.LogFile = v
	}
	return cfg, nil
}

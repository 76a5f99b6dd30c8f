package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/eiannone/keyboard"

	"elevsim/src/config"
	"elevsim/src/executor"
	"elevsim/src/monitor"
	"elevsim/src/scenario"
	"elevsim/src/timer"
	"elevsim/src/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	scenarioPath := flag.String("scenario", "scenarios/default.yaml", "Scenario file to simulate")
	envPath := flag.String("env", ".env", "Settings file")
	floors := flag.Int("floors", 0, "Number of floors, overrides the scenario")
	ticks := flag.Int("ticks", 0, "Number of ticks to simulate, overrides the scenario")
	interval := flag.Duration("interval", config.TickInterval, "Wall time between ticks, 0 runs as fast as possible")
	step := flag.Bool("step", false, "Advance one tick per key press")
	logFile := flag.String("log", "", "Also write the log to this file")
	forecast := flag.Bool("forecast", false, "Log predicted arrival ticks before running")
	maintenance := flag.Bool("maintenance", false, "Honour maintenance markers in the request list")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["interval"] {
		cfg.TickInterval = *interval
	}
	if set["log"] {
		cfg.LogFile = *logFile
	}
	if set["maintenance"] {
		cfg.Maintenance = *maintenance
	}

	runID, closeLog, err := utils.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	sc, err := scenario.Load(*scenarioPath, scenario.Defaults{Floors: cfg.NumFloors, Ticks: cfg.SimTicks})
	if err != nil {
		slog.Error("Loading scenario failed", "error", err)
		return 1
	}
	if set["floors"] {
		sc.Floors = *floors
	}
	if set["ticks"] {
		sc.Ticks = *ticks
	}
	requests, err := sc.BuildRequests()
	if err != nil {
		slog.Error("Invalid scenario", "error", err)
		return 1
	}

	opts := []executor.Option{executor.WithSink(monitor.LogSink{})}
	if cfg.Maintenance || sc.Maintenance {
		opts = append(opts, executor.WithMaintenance())
	}
	elevator, err := executor.New(sc.Floors, requests, opts...)
	if err != nil {
		slog.Error("Creating elevator failed", "error", err)
		return 1
	}
	slog.Info("Starting simulation", "scenario", *scenarioPath, "floors", sc.Floors, "ticks", sc.Ticks, "requests", len(requests))

	if *forecast {
		slog.Info("Forecast", "arrivals", executor.Forecast(elevator, sc.Ticks))
	}

	status := monitor.StatusLine{W: os.Stdout}
	tick := func() bool {
		if elevator.Clock() >= sc.Ticks {
			return false
		}
		elevator.Tick()
		status.Print(elevator.Snapshot())
		return elevator.Clock() < sc.Ticks
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *step {
		err = stepByKey(tick)
	} else {
		err = timer.Pace(ctx, cfg.TickInterval, tick)
	}
	fmt.Fprintln(os.Stdout)
	if err != nil && ctx.Err() == nil {
		slog.Error("Simulation stopped", "error", err)
		return 1
	}

	results := sc.Check(elevator.ArriveTimes())
	if len(results) > 0 {
		fmt.Printf("Run %s\n", runID)
	}
	for _, r := range results {
		fmt.Printf("Request %d: %v (arrived %d, want %v)\n", r.Request, r.Pass, r.Got, r.Want)
	}
	slog.Info("Simulation finished", "tick", elevator.Clock(), "floor", elevator.Floor(), "arrivals", elevator.ArriveTimes())
	if !scenario.Passed(results) {
		return 1
	}
	return 0
}

// stepByKey advances one tick per key press until q, Esc or Ctrl-C.
func stepByKey(tick func() bool) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("opening keyboard: %w", err)
	}
	defer keyboard.Close()
	fmt.Println("Press any key to advance one tick, q to quit")
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		if char == 'q' || key == keyboard.KeyEsc || key == keyboard.KeyCtrlC {
			return nil
		}
		if !tick() {
			return nil
		}
	}
}

// Observers for the simulation: they receive events from the car and never change it.
package monitor

import (
	"fmt"
	"io"
	"log/slog"

	"elevsim/src/executor"
	"elevsim/src/types"
	"elevsim/src/utils"
)

// LogSink writes every event to the default slog logger.
// State changes are logged at debug level, everything else at info.
type LogSink struct{}

func (LogSink) Handle(ev types.Event) {
	switch ev.Type {
	case types.StateChanged:
		slog.Debug("State changed", "tick", ev.Tick, "floor", ev.Floor, "state", ev.State)
	case types.Idle:
		slog.Info("Stopped, no pending requests", "tick", ev.Tick, "floor", ev.Floor)
	default:
		slog.Info(ev.Type.String(), "tick", ev.Tick, "floor", ev.Floor, "request", ev.Request)
	}
}

// Recorder keeps every event it receives, in order.
type Recorder struct {
	Events []types.Event
}

func (r *Recorder) Handle(ev types.Event) {
	r.Events = append(r.Events, ev)
}

// OfType returns the recorded events of type t.
func (r *Recorder) OfType(t types.EventType) []types.Event {
	var out []types.Event
	for _, ev := range r.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// Multi fans each event out to all sinks in order.
func Multi(sinks ...executor.Sink) executor.Sink {
	return executor.SinkFunc(func(ev types.Event) {
		for _, s := range sinks {
			s.Handle(ev)
		}
	})
}

// StatusLine prints a one-line summary of the car to W, overwriting the previous line.
type StatusLine struct {
	W io.Writer
}

func (s StatusLine) Print(snap executor.Snapshot) {
	fmt.Fprintf(s.W, "\r%s", FormatStatus(snap))
}

func FormatStatus(snap executor.Snapshot) string {
	served := 0
	utils.ForEachRequest(snap.Requests, func(_ int, req types.Request) {
		if req.Serviced && !req.IsMaintenanceStart() && !req.IsMaintenanceEnd() {
			served++
		}
	})
	return fmt.Sprintf("Tick: %3d | Floor: %2d | Dir: %-4s | State: %-11s | Riders: %d | Waiting here: %d | Served: %d",
		snap.Tick, snap.Floor, snap.Dir, snap.State, snap.Occupancy,
		utils.WaitingAt(snap.Requests, snap.Floor, snap.Tick), served)
}

package executor

import (
	"github.com/tiendc/go-deepcopy"

	"elevsim/src/types"
)

// Snapshot is a detached copy of the car, safe to keep after further ticks.
type Snapshot struct {
	Tick      int
	Floor     int
	Dir       types.MotorDirection
	State     types.ElevBehaviour
	Occupancy int
	Requests  []types.Request
}

// Snapshot copies the current car state and request list for an observer.
func (e *Elevator) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      e.clock,
		Floor:     e.floor,
		Dir:       e.dir,
		State:     e.state.behaviour,
		Occupancy: e.occupancy,
	}
	if err := deepcopy.Copy(&snap.Requests, &e.requests); err != nil {
		panic(err)
	}
	return snap
}

// Forecast runs a copy of the car until the clock reaches horizon and returns
// the tick each request would arrive at, -1 if it would not arrive by then.
// The car itself is left untouched and no events are published.
func Forecast(e *Elevator, horizon int) []int {
	sim := e.clone()
	sim.Run(horizon)
	return sim.ArriveTimes()
}

func (e *Elevator) clone() *Elevator {
	sim := &Elevator{
		numFloors:        e.numFloors,
		floor:            e.floor,
		dir:              e.dir,
		occupancy:        e.occupancy,
		clock:            e.clock,
		state:            e.state,
		maintenance:      e.maintenance,
		maintenanceSince: e.maintenanceSince,
	}
	if err := deepcopy.Copy(&sim.requests, &e.requests); err != nil {
		panic(err)
	}
	return sim
}

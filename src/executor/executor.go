package executor

import (
	"fmt"

	"elevsim/src/config"
	"elevsim/src/types"
)

// Sink receives the events produced while a tick runs.
type Sink interface {
	Handle(ev types.Event)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(ev types.Event)

func (f SinkFunc) Handle(ev types.Event) { f(ev) }

// dispatchState is the active state of the car. A transition replaces it as a whole.
type dispatchState struct {
	behaviour types.ElevBehaviour
	dwell     int // LoadUnload only
}

// Elevator owns the car, the request list and the tick loop.
// It is not safe for concurrent use.
type Elevator struct {
	numFloors        int
	requests         []types.Request
	floor            int
	dir              types.MotorDirection
	occupancy        int
	clock            int
	state            dispatchState
	sink             Sink
	maintenance      bool
	maintenanceSince int // tick at which the current maintenance period began
}

type Option func(*Elevator)

// WithSink routes simulation events to s.
func WithSink(s Sink) Option {
	return func(e *Elevator) { e.sink = s }
}

// WithMaintenance lets the maintenance sentinels in the request list switch the
// car in and out of maintenance. Without it the sentinels are inert.
func WithMaintenance() Option {
	return func(e *Elevator) { e.maintenance = true }
}

// New builds a stopped car at floor 1 at tick 0. Every request starts waiting,
// whatever progress the given values carry.
func New(numFloors int, requests []types.Request, opts ...Option) (*Elevator, error) {
	if numFloors < 1 {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidFloors, numFloors)
	}
	elevator := &Elevator{
		numFloors: numFloors,
		requests:  make([]types.Request, 0, len(requests)),
		floor:     1,
		dir:       types.MD_Stop,
		state:     dispatchState{behaviour: types.Stopped},
	}
	for i, req := range requests {
		fresh, err := types.NewRequest(req.Time, req.Src, req.Dest)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		if fresh.Src > numFloors || fresh.Dest > numFloors {
			return nil, fmt.Errorf("request %d: %w: floor above %d in %s", i, types.ErrInvalidRequest, numFloors, fresh)
		}
		elevator.requests = append(elevator.requests, fresh)
	}
	for _, opt := range opts {
		opt(elevator)
	}
	return elevator, nil
}

// Tick advances the simulation by exactly one time unit.
func (e *Elevator) Tick() {
	for i, req := range e.requests {
		if req.Time == e.clock {
			e.emit(types.RequestMade, i)
		}
	}
	if e.maintenance {
		e.checkMaintenance()
	}
	e.redirect()
	e.move()
	e.advance()
	e.clock++
}

// Run ticks until the clock reaches totalTicks, so ticks 0 to totalTicks-1 run.
func (e *Elevator) Run(totalTicks int) {
	for e.clock < totalTicks {
		e.Tick()
	}
}

func (e *Elevator) NumFloors() int { return e.numFloors }
func (e *Elevator) Floor() int { return e.floor }
func (e *Elevator) Dir() types.MotorDirection { return e.dir }
func (e *Elevator) Clock() int { return e.clock }
func (e *Elevator) Occupancy() int { return e.occupancy }
func (e *Elevator) State() types.ElevBehaviour { return e.state.behaviour }
func (e *Elevator) NumRequests() int { return len(e.requests) }
func (e *Elevator) Request(i int) types.Request { return e.requests[i] }

// Requests returns a copy of the request list.
func (e *Elevator) Requests() []types.Request {
	return append([]types.Request(nil), e.requests...)
}

// ArriveTimes lists each request's arrival tick, -1 for those not yet serviced.
func (e *Elevator) ArriveTimes() []int {
	times := make([]int, len(e.requests))
	for i, req := range e.requests {
		times[i] = req.ArriveTime
	}
	return times
}

func (e *Elevator) setState(behaviour types.ElevBehaviour) {
	e.state = dispatchState{behaviour: behaviour}
	if behaviour == types.LoadUnload {
		e.state.dwell = config.DwellTicks
	}
	e.publish(types.Event{Type: types.StateChanged, Tick: e.clock, Floor: e.floor, Request: -1, State: behaviour})
}

func (e *Elevator) setDir(dir types.MotorDirection) { e.dir = dir }

func (e *Elevator) board(i int) {
	e.requests[i].MarkBoarded()
	e.occupancy++
	e.emit(types.Boarded, i)
}

func (e *Elevator) alight(i int) {
	e.requests[i].MarkServiced(e.clock)
	e.occupancy--
	e.emit(types.Arrived, i)
}

func (e *Elevator) emit(t types.EventType, request int) {
	e.publish(types.Event{Type: t, Tick: e.clock, Floor: e.floor, Request: request})
}

func (e *Elevator) publish(ev types.Event) {
	if e.sink != nil {
		e.sink.Handle(ev)
	}
}

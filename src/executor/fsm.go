// Contains the dispatch state machine. Every tick runs redirect, move and
// advance in that order, each against the state that is active when it is called.
package executor

import "elevsim/src/types"

func (e *Elevator) redirect() {
	switch e.state.behaviour {
	case types.Stopped:
		e.redirectStopped()
	case types.Moving:
		e.redirectMoving()
	case types.LoadUnload:
		e.redirectLoadUnload()
	case types.Maintenance:
	}
}

// move runs for the state installed by redirect, so a car that started the tick
// moving but is now loading does not pick a new direction.
func (e *Elevator) move() {
	switch e.state.behaviour {
	case types.Stopped:
		e.moveStopped()
	case types.Moving:
		e.moveMoving()
	case types.LoadUnload:
		e.moveLoadUnload()
	case types.Maintenance:
	}
}

func (e *Elevator) advance() {
	switch e.state.behaviour {
	case types.Moving:
		e.advanceMoving()
	case types.Stopped, types.LoadUnload, types.Maintenance:
	}
}

// A parked car lets a rider on at this floor without any load time.
func (e *Elevator) redirectStopped() {
	for i, req := range e.requests {
		if !req.IsLive(e.clock) {
			continue
		}
		if req.Src == e.floor && !req.Boarded {
			e.board(i)
			e.setState(types.LoadUnload)
			return
		}
		if req.Dest == e.floor && req.Boarded {
			e.alight(i)
			e.setState(types.LoadUnload)
			return
		}
	}
	if !hasLiveRequests(e.requests, e.clock) {
		e.setDir(types.MD_Stop)
	}
}

func (e *Elevator) moveStopped() {
	dir := nearestDirection(e.requests, e.floor, e.clock)
	if dir != types.MD_Stop {
		e.setDir(dir)
		e.setState(types.Moving)
	}
}

// Alighting riders are let off by LoadUnload on this same tick.
func (e *Elevator) redirectMoving() {
	for i, req := range e.requests {
		if shouldAlight(req, e.floor) {
			e.setState(types.LoadUnload)
			return
		}
		if shouldBoard(req, e.floor, e.clock) {
			e.board(i)
			e.setState(types.LoadUnload)
			return
		}
	}
}

func (e *Elevator) moveMoving() {
	if requestsAhead(e.requests, e.floor, e.clock, e.dir) {
		return
	}
	dir := nearestDirection(e.requests, e.floor, e.clock)
	if dir == types.MD_Stop {
		e.setDir(types.MD_Stop)
		e.setState(types.Stopped)
		e.emit(types.Idle, -1)
		return
	}
	e.setDir(dir)
}

func (e *Elevator) advanceMoving() {
	switch {
	case e.dir == types.MD_Up && e.floor < e.numFloors:
		e.floor++
	case e.dir == types.MD_Down && e.floor > 1:
		e.floor--
	}
}

// checkMaintenance consumes maintenance sentinels before the state machine runs.
//   - Outside maintenance, a pending start stops the car where it is.
//   - In maintenance, a pending end issued no earlier than the start resumes normal service.
func (e *Elevator) checkMaintenance() {
	if e.state.behaviour == types.Maintenance {
		for i, req := range e.requests {
			if req.IsMaintenanceEnd() && !req.Serviced && req.Time <= e.clock && req.Time >= e.maintenanceSince {
				e.consumeSentinel(i)
				e.emit(types.MaintenanceEnded, i)
				e.setState(types.Stopped)
				return
			}
		}
		return
	}
	for i, req := range e.requests {
		if req.IsMaintenanceStart() && !req.Serviced && req.Time <= e.clock {
			e.consumeSentinel(i)
			e.maintenanceSince = e.clock
			e.setDir(types.MD_Stop)
			e.emit(types.MaintenanceStarted, i)
			e.setState(types.Maintenance)
			return
		}
	}
}

func (e *Elevator) consumeSentinel(i int) {
	e.requests[i].MarkBoarded()
	e.requests[i].MarkServiced(e.clock)
}

package executor

import "elevsim/src/types"

// redirectLoadUnload waits for the doors, then picks the next direction.
func (e *Elevator) redirectLoadUnload() {
	if e.state.dwell > 0 {
		return
	}
	dir := resumeDirection(e.requests, e.floor, e.clock, e.dir)
	e.setDir(dir)
	if dir == types.MD_Stop {
		e.setState(types.Stopped)
		return
	}
	e.setState(types.Moving)
}

// moveLoadUnload exchanges every rider at this floor while the doors are open:
// all alightings first, then all boardings.
func (e *Elevator) moveLoadUnload() {
	if e.state.dwell == 1 {
		for i, req := range e.requests {
			if shouldAlight(req, e.floor) {
				e.alight(i)
			}
		}
		for i, req := range e.requests {
			if shouldBoard(req, e.floor, e.clock) {
				e.board(i)
			}
		}
	}
	if e.state.dwell > 0 {
		e.state.dwell--
	}
}

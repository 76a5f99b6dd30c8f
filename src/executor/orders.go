package executor

import "elevsim/src/types"

// Checks if any live request needs the car at this floor or further along dir.
func requestsAhead(requests []types.Request, floor, now int, dir types.MotorDirection) bool {
	for _, req := range requests {
		if !req.IsLive(now) {
			continue
		}
		target := req.RequestedFloor()
		if target == floor ||
			(dir == types.MD_Up && target > floor) ||
			(dir == types.MD_Down && target < floor) {
			return true
		}
	}
	return false
}

// Algorithm for choosing direction from a full stop or while moving.
//  1. Head towards the live request whose requested floor is closest.
//  2. Among requests equally close, prefer one above the car.
//  3. Return MD_Stop if there are no live requests.
func nearestDirection(requests []types.Request, floor, now int) types.MotorDirection {
	dir := types.MD_Stop
	nearest := -1
	for _, req := range requests {
		if !req.IsLive(now) {
			continue
		}
		target := req.RequestedFloor()
		distance := abs(target - floor)
		switch {
		case nearest < 0 || distance < nearest:
			nearest = distance
			dir = directionTo(floor, target)
		case distance == nearest && target > floor:
			dir = types.MD_Up
		}
	}
	return dir
}

// Algorithm for choosing direction when the doors close after a stop.
//   - A car going down keeps going down while some live request has its destination below.
//   - Distance is measured to each request's destination floor.
//   - A car going up picks up again, Move corrects it on the same tick if nothing is above.
//   - Ties favour up unless the car was going down.
//
// There is no up counterpart to the first rule.
func resumeDirection(requests []types.Request, floor, now int, dir types.MotorDirection) types.MotorDirection {
	newDir := types.MD_Stop
	nearest := -1
	for _, req := range requests {
		if !req.IsLive(now) {
			continue
		}
		if dir == types.MD_Down && req.Dest < floor {
			return types.MD_Down
		}
		distance := abs(req.Dest - floor)
		switch {
		case nearest < 0 || distance < nearest:
			nearest = distance
			if req.RequestedFloor() > floor || dir == types.MD_Up {
				newDir = types.MD_Up
			} else {
				newDir = types.MD_Down
			}
		case distance == nearest && dir != types.MD_Down:
			newDir = types.MD_Up
		}
	}
	return newDir
}

func shouldAlight(req types.Request, floor int) bool {
	return !req.Serviced && req.Boarded && req.Dest == floor
}

func shouldBoard(req types.Request, floor, now int) bool {
	return !req.Boarded && req.IsLive(now) && req.Src == floor
}

func hasLiveRequests(requests []types.Request, now int) bool {
	for _, req := range requests {
		if req.IsLive(now) {
			return true
		}
	}
	return false
}

func directionTo(from, to int) types.MotorDirection {
	if to > from {
		return types.MD_Up
	}
	return types.MD_Down
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

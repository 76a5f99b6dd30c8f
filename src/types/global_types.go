package types

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidFloors  = errors.New("invalid number of floors")
)

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "Up"
	case MD_Down:
		return "Down"
	default:
		return "Stop"
	}
}

// ElevBehaviour tags the active dispatch state of the car.
type ElevBehaviour int

const (
	Stopped ElevBehaviour = iota
	Moving
	LoadUnload
	Maintenance
)

func (b ElevBehaviour) String() string {
	return [...]string{"Stopped", "Moving", "LoadUnload", "Maintenance"}[b]
}

// NoFloor is returned by Request.RequestedFloor once the request is serviced.
const NoFloor = -1

// Floors reserved for the maintenance sentinels.
const (
	maintenanceStartFloor = -1
	maintenanceEndFloor   = 0
)

package types

import "fmt"

type EventType int

const (
	RequestMade EventType = iota
	Boarded
	Arrived
	StateChanged
	Idle
	MaintenanceStarted
	MaintenanceEnded
)

func (t EventType) String() string {
	return [...]string{
		"RequestMade",
		"Boarded",
		"Arrived",
		"StateChanged",
		"Idle",
		"MaintenanceStarted",
		"MaintenanceEnded",
	}[t]
}

// Event is emitted by the simulation during a tick.
// Request is an index into the request list, -1 when the event is not about a request.
type Event struct {
	Type    EventType
	Tick    int
	Floor   int
	Request int
	State   ElevBehaviour // StateChanged only: the state that became active
}

func (e Event) String() string {
	switch e.Type {
	case StateChanged:
		return fmt.Sprintf("t=%d floor=%d state=%s", e.Tick, e.Floor, e.State)
	case RequestMade, Boarded, Arrived, MaintenanceStarted, MaintenanceEnded:
		return fmt.Sprintf("t=%d floor=%d %s request=%d", e.Tick, e.Floor, e.Type, e.Request)
	}
	return fmt.Sprintf("t=%d floor=%d %s", e.Tick, e.Floor, e.Type)
}

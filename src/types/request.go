package types

import "fmt"

// Request is one rider's journey. A request moves strictly from waiting to
// boarded to serviced.
//   - Time: tick at which the rider appears
//   - Src, Dest: floors, both -1 for maintenance start and both 0 for maintenance end
//   - ArriveTime: tick of drop-off, -1 until serviced
type Request struct {
	Time       int
	Src        int
	Dest       int
	Boarded    bool
	Serviced   bool
	ArriveTime int
}

// NewRequest rejects negative times, floors below 1 and trips that start and
// end on the same floor. Maintenance sentinels are accepted as they are.
func NewRequest(time, src, dest int) (Request, error) {
	req := Request{Time: time, Src: src, Dest: dest, ArriveTime: -1}
	if time < 0 {
		return Request{}, fmt.Errorf("%w: negative request time %d", ErrInvalidRequest, time)
	}
	if req.IsMaintenanceStart() || req.IsMaintenanceEnd() {
		return req, nil
	}
	if src < 1 || dest < 1 {
		return Request{}, fmt.Errorf("%w: floors must be at least 1, got %d -> %d", ErrInvalidRequest, src, dest)
	}
	if src == dest {
		return Request{}, fmt.Errorf("%w: source and destination are both floor %d", ErrInvalidRequest, src)
	}
	return req, nil
}

// MustRequest is NewRequest for fixed request lists; it panics on invalid input.
func MustRequest(time, src, dest int) Request {
	req, err := NewRequest(time, src, dest)
	if err != nil {
		panic(err)
	}
	return req
}

func (r Request) IsGoingUp() bool { return r.Dest >= r.Src }

// RequestedFloor is the floor this request currently needs the car to visit.
func (r Request) RequestedFloor() int {
	switch {
	case r.Serviced:
		return NoFloor
	case r.Boarded:
		return r.Dest
	default:
		return r.Src
	}
}

// IsLive reports whether the request takes part in dispatch at tick now.
// Maintenance sentinels never do.
func (r Request) IsLive(now int) bool {
	return !r.Serviced && r.Time <= now && !r.IsMaintenanceStart() && !r.IsMaintenanceEnd()
}

func (r Request) IsMaintenanceStart() bool {
	return r.Src == maintenanceStartFloor && r.Dest == maintenanceStartFloor
}

func (r Request) IsMaintenanceEnd() bool {
	return r.Src == maintenanceEndFloor && r.Dest == maintenanceEndFloor
}

func (r *Request) MarkBoarded() { r.Boarded = true }

// MarkServiced must only be called on a boarded request.
func (r *Request) MarkServiced(at int) {
	r.Serviced = true
	r.ArriveTime = at
}

func (r Request) String() string {
	switch {
	case r.IsMaintenanceStart():
		return fmt.Sprintf("MaintenanceStart(t=%d)", r.Time)
	case r.IsMaintenanceEnd():
		return fmt.Sprintf("MaintenanceEnd(t=%d)", r.Time)
	}
	return fmt.Sprintf("Trip(t=%d, %d->%d)", r.Time, r.Src, r.Dest)
}

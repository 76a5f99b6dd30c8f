package executor

import (
	"testing"

	"elevsim/src/types"
)

func boarded(req types.Request) types.Request {
	req.MarkBoarded()
	return req
}

func TestNearestDirection(t *testing.T) {
	tests := []struct {
		name     string
		requests []types.Request
		floor    int
		want     types.MotorDirection
	}{
		{"no requests", nil, 3, types.MD_Stop},
		{"pickup above", []types.Request{types.MustRequest(0, 5, 1)}, 3, types.MD_Up},
		{"pickup below", []types.Request{types.MustRequest(0, 1, 5)}, 3, types.MD_Down},
		{"rider heading down", []types.Request{boarded(types.MustRequest(0, 5, 1))}, 3, types.MD_Down},
		{"nearest wins", []types.Request{types.MustRequest(0, 7, 1), types.MustRequest(0, 2, 6)}, 3, types.MD_Down},
		{"tie below listed first", []types.Request{types.MustRequest(0, 2, 6), types.MustRequest(0, 4, 1)}, 3, types.MD_Up},
		{"tie above listed first", []types.Request{types.MustRequest(0, 4, 1), types.MustRequest(0, 2, 6)}, 3, types.MD_Up},
		{"not made yet", []types.Request{types.MustRequest(9, 5, 1)}, 3, types.MD_Stop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestDirection(tt.requests, tt.floor, 0); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResumeDirection(t *testing.T) {
	tests := []struct {
		name     string
		requests []types.Request
		floor    int
		dir      types.MotorDirection
		want     types.MotorDirection
	}{
		{"nothing left", nil, 3, types.MD_Up, types.MD_Stop},
		{"down keeps down", []types.Request{types.MustRequest(0, 4, 5), boarded(types.MustRequest(0, 6, 1))}, 3, types.MD_Down, types.MD_Down},
		{"up keeps up", []types.Request{boarded(types.MustRequest(0, 5, 2))}, 3, types.MD_Up, types.MD_Up},
		{"stopped heads to pickup", []types.Request{types.MustRequest(0, 1, 2)}, 3, types.MD_Stop, types.MD_Down},
		{"distance to destination", []types.Request{types.MustRequest(0, 2, 7), types.MustRequest(0, 6, 4)}, 3, types.MD_Stop, types.MD_Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resumeDirection(tt.requests, tt.floor, 0, tt.dir); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRequestsAhead(t *testing.T) {
	requests := []types.Request{types.MustRequest(0, 5, 1)}
	if !requestsAhead(requests, 3, 0, types.MD_Up) {
		t.Error("pickup above not seen going up")
	}
	if requestsAhead(requests, 3, 0, types.MD_Down) {
		t.Error("pickup above seen going down")
	}
	if !requestsAhead(requests, 5, 0, types.MD_Down) {
		t.Error("pickup at the current floor not seen")
	}
}

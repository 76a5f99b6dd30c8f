package utils

import (
	"elevsim/src/types"
)

// ForEachRequest is a helper function that reduces indentation when inspecting a request list
func ForEachRequest(requests []types.Request, action func(i int, req types.Request)) {
	for i, req := range requests {
		action(i, req)
	}
}

// WaitingAt counts the riders that have appeared at floor by tick now and are not yet on board.
func WaitingAt(requests []types.Request, floor, now int) (count int) {
	ForEachRequest(requests, func(_ int, req types.Request) {
		if req.IsLive(now) && !req.Boarded && req.Src == floor {
			count++
		}
	})
	return count
}

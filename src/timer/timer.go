package timer

import (
	"context"
	"time"
)

// Pace calls step once per interval until step returns false or ctx is done.
// A non-positive interval runs the steps back to back.
func Pace(ctx context.Context, interval time.Duration, step func() bool) error {
	if interval <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !step() {
				return nil
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Both cases may be ready at once; cancellation wins.
			if err := ctx.Err(); err != nil {
				return err
			}
			if !step() {
				return nil
			}
		}
	}
}

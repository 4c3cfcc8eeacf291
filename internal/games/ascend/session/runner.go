package session

import (
	"context"
	"time"
)

// DefaultResolution is the clock step used by Run when none is given.
const DefaultResolution = 50 * time.Millisecond

// Run drives Advance from a ticker until ctx is done, a tick fails or the
// game ends. It is meant for hosts that have no event loop of their own;
// the terminal front end calls Advance from its frame ticks instead.
func (c *Controller) Run(ctx context.Context, resolution time.Duration) error {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	ticker := time.NewTicker(resolution)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := c.Advance(dt); err != nil {
				return err
			}
			if c.IsGameOver() {
				return ErrGameOver
			}
		}
	}
}

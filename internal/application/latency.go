package application

import (
	"context"
	"time"
)

// pace blocks for the configured simulated latency, honoring cancellation.
// The original product paced every service call for UX reasons; here the
// delay is injectable and defaults to zero.
func pace(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

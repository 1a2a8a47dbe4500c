// Package wait holds the cancellable pauses shared by the probe and the recovery sweep.
package wait

import (
	"context"
	"time"
)

// Sleep pauses for d or until ctx is done, whichever comes first. It returns ctx.Err() when
// the context ends the pause, and also when d is not positive and ctx is already done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

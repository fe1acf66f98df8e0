package watch

import (
	"context"
	"time"
)

// Clock abstracts time so the watch loop can be tested without real
// timers. Sleep returns nil after the full duration has elapsed, or
// ctx.Err() when the wait is cancelled early.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// wallClock is the real-time clock used outside tests.
type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

func (wallClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

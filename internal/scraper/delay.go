package scraper

import (
	"context"
	"math/rand"
	"time"
)

const (
	// DefaultMinDelay and DefaultMaxDelay bound the pause between two search pages
	DefaultMinDelay = 500 * time.Millisecond
	DefaultMaxDelay = 1500 * time.Millisecond
)

// DelayFunc decides how long to wait before the next page is requested
type DelayFunc func() time.Duration

// SleepFunc blocks for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// UniformDelay returns a DelayFunc picking a duration uniformly in [min, max]
func UniformDelay(min, max time.Duration) DelayFunc {
	if max <= min {
		return func() time.Duration { return min }
	}
	return func() time.Duration {
		return time.Duration(rand.Int63n(int64(max-min)+1)) + min
	}
}

// NoDelay never waits
func NoDelay() time.Duration {
	return 0
}

func sleepContext(ctx context.Context, d time.Duration) error {
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

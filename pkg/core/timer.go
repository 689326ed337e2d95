package core

import (
	"context"
	"time"
)

// FixedStep paces a frame loop at a steady interval between frames.
type FixedStep struct {
	step time.Duration
	last time.Time
	now  func() time.Time
}

// NewFixedStep constructs a FixedStep that waits delay between frames. A
// non-positive delay disables pacing.
func NewFixedStep(delay time.Duration) *FixedStep {
	return &FixedStep{step: delay, now: time.Now}
}

// Wait blocks until one interval has elapsed since the previous call returned,
// or until ctx is done. Time spent rendering counts against the interval.
func (f *FixedStep) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.step <= 0 {
		f.last = f.now()
		return nil
	}
	if f.last.IsZero() {
		f.last = f.now()
	}
	remaining := f.step - f.now().Sub(f.last)
	if remaining > 0 {
		t := time.NewTimer(remaining)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	f.last = f.now()
	return nil
}

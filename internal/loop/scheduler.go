// Package loop drives game frames outside of the TUI: a wall-clock ticker
// for realtime playback and a fixed-step driver for headless runs.
package loop

import (
	"context"
	"time"
)

// DefaultRate is the frame rate used when none is configured.
const DefaultRate = 60

// Scheduler calls frame once per frame until frame returns false, the
// context is cancelled, or the scheduler's own limit is reached.
type Scheduler interface {
	Run(ctx context.Context, frame func() bool) error
}

// Realtime calls frame on a wall-clock ticker at Rate frames per second.
type Realtime struct {
	Rate int
}

// Interval returns the time between frames.
func (r Realtime) Interval() time.Duration {
	rate := r.Rate
	if rate <= 0 {
		rate = DefaultRate
	}
	return time.Second / time.Duration(rate)
}

// Run implements Scheduler. It returns ctx.Err() when cancelled and nil when
// frame asks to stop.
func (r Realtime) Run(ctx context.Context, frame func() bool) error {
	ticker := time.NewTicker(r.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !frame() {
				return nil
			}
		}
	}
}

// Fixed calls frame back to back without waiting. Frames <= 0 means no
// limit.
type Fixed struct {
	Frames int
}

// Run implements Scheduler.
func (f Fixed) Run(ctx context.Context, frame func() bool) error {
	for n := 0; f.Frames <= 0 || n < f.Frames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !frame() {
			return nil
		}
	}
	return nil
}

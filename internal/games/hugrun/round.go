package hugrun

import (
	"time"

	"github.com/vovakirdan/hugrun/internal/core"
)

// Timer measures how long a round has been running. It freezes the moment
// it is stopped and keeps that value until restarted.
type Timer struct {
	start   time.Time
	running bool
	elapsed time.Duration
}

// Start (re)starts the timer at now.
func (t *Timer) Start(now time.Time) {
	t.start = now
	t.running = true
	t.elapsed = 0
}

// Stop freezes the timer and returns the captured duration. Stopping a
// stopped timer returns the value captured earlier.
func (t *Timer) Stop(now time.Time) time.Duration {
	if t.running {
		t.elapsed = now.Sub(t.start)
		t.running = false
	}
	return t.elapsed
}

// Elapsed returns the live duration while running, the frozen one otherwise.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	if t.running {
		return now.Sub(t.start)
	}
	return t.elapsed
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	return t.running
}

// Round is the Running → Won | Lost state machine of one play-through.
// Only Start leaves a terminal phase.
type Round struct {
	phase core.Phase
	timer Timer
}

// Start enters Running and restarts the timer. Allowed from any phase.
func (r *Round) Start(now time.Time) {
	r.phase = core.PhaseRunning
	r.timer.Start(now)
}

// Lose moves Running to Lost and freezes the timer. The time is not
// recorded anywhere. Returns false if the round was not running.
func (r *Round) Lose(now time.Time) bool {
	if r.phase != core.PhaseRunning {
		return false
	}
	r.phase = core.PhaseLost
	r.timer.Stop(now)
	return true
}

// Win moves Running to Won and returns the frozen completion time. ok is
// true only on the transition itself, so the caller records the time
// exactly once no matter how often Win is evaluated afterwards.
func (r *Round) Win(now time.Time) (d time.Duration, ok bool) {
	if r.phase != core.PhaseRunning {
		return r.timer.Elapsed(now), false
	}
	r.phase = core.PhaseWon
	return r.timer.Stop(now), true
}

// Phase returns the current phase.
func (r *Round) Phase() core.Phase {
	return r.phase
}

// Elapsed returns the timer reading for display.
func (r *Round) Elapsed(now time.Time) time.Duration {
	return r.timer.Elapsed(now)
}

package core

import "time"

// DefaultMaxStep caps a single frame delta. A suspended terminal (ctrl+z,
// detached ssh session) can leave a multi-second gap between ticks; feeding
// that into integration would teleport every actor.
const DefaultMaxStep = 100 * time.Millisecond

// Timer converts successive frame timestamps into clamped delta-time values.
// The zero value is not usable; construct with NewTimer.
type Timer struct {
	last    time.Time
	maxStep time.Duration
	started bool
}

// NewTimer creates a timer with the given maximum step.
// A non-positive maxStep falls back to DefaultMaxStep.
func NewTimer(maxStep time.Duration) *Timer {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Timer{maxStep: maxStep}
}

// Delta returns the elapsed time in seconds since the previous call,
// clamped to the maximum step. The first call returns zero.
func (t *Timer) Delta(now time.Time) float64 {
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}

	elapsed := now.Sub(t.last)
	t.last = now

	if elapsed < 0 {
		return 0
	}
	if elapsed > t.maxStep {
		elapsed = t.maxStep
	}
	return elapsed.Seconds()
}

// Reset forgets the previous timestamp so the next Delta returns zero.
// Called when resuming after a deliberate pause in the loop.
func (t *Timer) Reset() {
	t.started = false
}

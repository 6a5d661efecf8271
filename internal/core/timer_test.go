package core

import (
	"testing"
	"time"
)

func TestTimerFirstDeltaIsZero(t *testing.T) {
	tm := NewTimer(0)
	if got := tm.Delta(time.Now()); got != 0 {
		t.Errorf("first Delta() = %f, expected 0", got)
	}
}

func TestTimerDelta(t *testing.T) {
	tm := NewTimer(time.Second)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.Delta(base)
	got := tm.Delta(base.Add(16 * time.Millisecond))
	if got != 0.016 {
		t.Errorf("Delta() = %f, expected 0.016", got)
	}
}

func TestTimerClampsLargeStep(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.Delta(base)
	// Simulate a suspended session: 5 seconds between frames
	got := tm.Delta(base.Add(5 * time.Second))
	if got != 0.1 {
		t.Errorf("Delta() after suspend = %f, expected clamp to 0.1", got)
	}
}

func TestTimerNegativeElapsed(t *testing.T) {
	tm := NewTimer(time.Second)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.Delta(base)
	if got := tm.Delta(base.Add(-time.Second)); got != 0 {
		t.Errorf("Delta() with clock skew = %f, expected 0", got)
	}
}

func TestTimerReset(t *testing.T) {
	tm := NewTimer(time.Second)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.Delta(base)
	tm.Reset()
	if got := tm.Delta(base.Add(time.Hour)); got != 0 {
		t.Errorf("Delta() after Reset = %f, expected 0", got)
	}
}

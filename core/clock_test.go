package core

import (
	"testing"
	"time"
)

func TestCoarseNow(t *testing.T) {
	StartCoarseClock()
	// Allow the ticker to fire at least once
	time.Sleep(2 * time.Millisecond)

	got := CoarseNow()
	diff := time.Since(got)
	if diff < 0 {
		diff = -diff
	}

	// The cached time should be within 5ms of real time
	if diff > 5*time.Millisecond {
		t.Errorf("CoarseNow() drifted %v from time.Now()", diff)
	}
}

func TestStartCoarseClockIdempotent(t *testing.T) {
	StartCoarseClock()
	StartCoarseClock()
	StartCoarseClock()

	if CoarseNow().IsZero() {
		t.Error("CoarseNow() returned zero time after multiple StartCoarseClock calls")
	}
}

func TestCoarseClock(t *testing.T) {
	clock := CoarseClock()
	if clock().IsZero() {
		t.Error("CoarseClock() returned a clock reporting zero time")
	}
}

func TestFixedClock(t *testing.T) {
	want := time.Date(2025, 9, 25, 20, 41, 12, 0, time.UTC)
	clock := FixedClock(want)
	if got := clock(); !got.Equal(want) {
		t.Errorf("FixedClock() = %v, want %v", got, want)
	}
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := SystemClock()
	if got.Before(before) {
		t.Errorf("SystemClock() = %v, earlier than %v", got, before)
	}
}

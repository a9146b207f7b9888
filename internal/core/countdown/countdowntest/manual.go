// Package countdowntest provides a manually driven scheduler for tests.
package countdowntest

import (
	"time"

	"tomato/internal/core/countdown"
)

// ManualScheduler queues callbacks until the test fires them.
type ManualScheduler struct {
	pending []*ManualTimer
}

// ManualTimer is a queued callback.
type ManualTimer struct {
	Delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// Stop implements countdown.Timer.
func (timer *ManualTimer) Stop() bool {
	if timer.stopped || timer.fired {
		return false
	}
	timer.stopped = true
	return true
}

// AfterFunc implements countdown.Scheduler.
func (scheduler *ManualScheduler) AfterFunc(delay time.Duration, fn func()) countdown.Timer {
	timer := &ManualTimer{Delay: delay, fn: fn}
	scheduler.pending = append(scheduler.pending, timer)
	return timer
}

// Pending returns the number of live callbacks.
func (scheduler *ManualScheduler) Pending() int {
	count := 0
	for _, timer := range scheduler.pending {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

// Fire runs the oldest live callback. It returns false when none is queued.
func (scheduler *ManualScheduler) Fire() bool {
	for len(scheduler.pending) > 0 {
		timer := scheduler.pending[0]
		scheduler.pending = scheduler.pending[1:]
		if timer.stopped || timer.fired {
			continue
		}
		timer.fired = true
		timer.fn()
		return true
	}
	return false
}

// FireN runs up to n callbacks and returns how many ran.
func (scheduler *ManualScheduler) FireN(n int) int {
	ran := 0
	for ran < n && scheduler.Fire() {
		ran++
	}
	return ran
}

// FireStale runs a callback even if it was stopped, to simulate a timer
// that had already expired when Stop was called.
func (scheduler *ManualScheduler) FireStale() bool {
	for len(scheduler.pending) > 0 {
		timer := scheduler.pending[0]
		scheduler.pending = scheduler.pending[1:]
		if timer.fired {
			continue
		}
		timer.fired = true
		timer.fn()
		return true
	}
	return false
}

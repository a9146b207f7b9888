package countdown

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Timer
}

// ClockScheduler schedules callbacks on the wall clock.
// Dispatch, when set, moves each callback onto the caller's event loop.
type ClockScheduler struct {
	Dispatch func(func())
}

// AfterFunc implements Scheduler.
func (scheduler ClockScheduler) AfterFunc(delay time.Duration, fn func()) Timer {
	run := fn
	if scheduler.Dispatch != nil {
		dispatch := scheduler.Dispatch
		run = func() {
			dispatch(fn)
		}
	}
	return time.AfterFunc(delay, run)
}

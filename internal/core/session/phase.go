package session

import "time"

// Phase represents the current interval kind.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
	PhaseDone       Phase = "done"
)

// Interval is the outcome of a single Advance call.
type Interval struct {
	Phase    Phase
	Duration time.Duration
	Rep      int
}

// Seconds returns the interval length in whole seconds.
func (interval Interval) Seconds() int {
	return int(interval.Duration / time.Second)
}

// IsBreak reports whether the phase is a short or long break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseShortBreak || phase == PhaseLongBreak
}

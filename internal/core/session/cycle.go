package session

import (
	"strings"
	"time"

	"tomato/internal/core/model"
)

// MaxRepetitions is the number of intervals in a full cycle.
const MaxRepetitions = 15

// tickClearRep is the repetition whose start wipes the tick row.
const tickClearRep = 9

// PhaseFor maps a repetition number to its phase.
func PhaseFor(rep int) Phase {
	switch {
	case rep <= 0:
		return PhaseIdle
	case rep > MaxRepetitions:
		return PhaseDone
	case rep%2 == 1:
		return PhaseWork
	case rep%8 == 0:
		return PhaseLongBreak
	default:
		return PhaseShortBreak
	}
}

// Cycle tracks repetitions and completed-work tick marks.
type Cycle struct {
	schedule model.Schedule
	reps     int
	ticks    int
	phase    Phase
}

// New creates an idle cycle for the provided schedule.
func New(schedule model.Schedule) *Cycle {
	return &Cycle{
		schedule: schedule,
		phase:    PhaseIdle,
	}
}

// Advance moves to the next interval and returns it.
// Once every repetition is used it returns a Done interval.
func (cycle *Cycle) Advance() Interval {
	if cycle.reps >= MaxRepetitions {
		if cycle.phase != PhaseDone {
			cycle.phase = PhaseDone
			cycle.ticks++
		}
		return Interval{Phase: PhaseDone, Rep: cycle.reps}
	}

	cycle.reps++
	cycle.phase = PhaseFor(cycle.reps)

	switch {
	case cycle.reps%2 == 0:
		cycle.ticks++
	case cycle.reps == tickClearRep:
		cycle.ticks = 0
	}

	return Interval{
		Phase:    cycle.phase,
		Duration: cycle.durationFor(cycle.phase),
		Rep:      cycle.reps,
	}
}

// Reset returns the cycle to its idle state.
func (cycle *Cycle) Reset() {
	cycle.reps = 0
	cycle.ticks = 0
	cycle.phase = PhaseIdle
}

// Reps returns the number of started repetitions.
func (cycle *Cycle) Reps() int {
	return cycle.reps
}

// Phase returns the current phase.
func (cycle *Cycle) Phase() Phase {
	return cycle.phase
}

// Ticks returns the number of tick marks currently shown.
func (cycle *Cycle) Ticks() int {
	return cycle.ticks
}

// TickText renders the tick row.
func (cycle *Cycle) TickText() string {
	return strings.Repeat(cycle.schedule.TickMark, cycle.ticks)
}

func (cycle *Cycle) durationFor(phase Phase) time.Duration {
	switch phase {
	case PhaseWork:
		return cycle.schedule.Work.Duration
	case PhaseShortBreak:
		return cycle.schedule.ShortBreak.Duration
	case PhaseLongBreak:
		return cycle.schedule.LongBreak.Duration
	default:
		return 0
	}
}

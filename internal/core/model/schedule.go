package model

import "time"

// PhaseStyle describes how a phase is presented and announced.
type PhaseStyle struct {
	Label       string
	Color       string
	NotifyTitle string
	NotifyBody  string
	Duration    time.Duration
}

// Schedule contains the fixed Pomodoro cycle constants.
type Schedule struct {
	Work       PhaseStyle
	ShortBreak PhaseStyle
	LongBreak  PhaseStyle

	IdleLabel string
	IdleColor string
	DoneLabel string
	DoneColor string

	TickMark string
}

// WorkSeconds returns the work interval length in seconds.
func (schedule Schedule) WorkSeconds() int {
	return int(schedule.Work.Duration / time.Second)
}

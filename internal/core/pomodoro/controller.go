package pomodoro

import (
	"log/slog"

	"tomato/internal/core/countdown"
	"tomato/internal/core/model"
	"tomato/internal/core/session"
)

// Options contains the collaborators of a Controller.
type Options struct {
	Scheduler countdown.Scheduler
	Notifier  Notifier
	Logger    *slog.Logger
}

// Status is a read-only view of the controller state.
type Status struct {
	Phase     session.Phase
	Label     string
	Rep       int
	Remaining int
	Ticks     int
}

// Controller drives the work/break cycle and its countdowns.
// All methods must be called from the UI event loop.
type Controller struct {
	schedule model.Schedule
	cycle    *session.Cycle
	engine   *countdown.Engine
	display  Display
	notifier Notifier
	logger   *slog.Logger
}

// New creates an idle controller.
func New(schedule model.Schedule, display Display, options Options) *Controller {
	if options.Scheduler == nil {
		options.Scheduler = countdown.ClockScheduler{}
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Controller{
		schedule: schedule,
		cycle:    session.New(schedule),
		engine:   countdown.New(options.Scheduler),
		display:  display,
		notifier: options.Notifier,
		logger:   options.Logger,
	}
}

// Start begins the next interval. It is ignored while a countdown is
// running or once the cycle is done.
func (controller *Controller) Start() {
	if controller.engine.Running() {
		controller.logger.Debug("start ignored", "reason", "countdown running")
		return
	}
	if controller.cycle.Phase() == session.PhaseDone {
		controller.logger.Debug("start ignored", "reason", "cycle done")
		return
	}
	controller.display.SetStartEnabled(false)
	controller.next()
}

// Reset cancels the running countdown and returns to the idle state.
func (controller *Controller) Reset() {
	controller.engine.Cancel()
	controller.cycle.Reset()
	controller.logger.Info("cycle reset")
	controller.Render()
}

// Render pushes the current state to the display.
func (controller *Controller) Render() {
	status := controller.Snapshot()
	label, color := controller.labelFor(status.Phase)
	controller.display.SetTimerText(label, color)
	controller.display.SetTickText(controller.cycle.TickText())

	switch status.Phase {
	case session.PhaseIdle:
		controller.display.SetCountdownText(countdown.FormatClock(controller.schedule.WorkSeconds()))
		controller.display.SetStartEnabled(true)
	case session.PhaseDone:
		controller.display.SetCountdownText(countdown.FormatClock(0))
		controller.display.SetStartEnabled(false)
	default:
		controller.display.SetCountdownText(countdown.FormatClock(status.Remaining))
		controller.display.SetStartEnabled(!controller.engine.Running())
	}
}

// Snapshot returns the current status.
func (controller *Controller) Snapshot() Status {
	phase := controller.cycle.Phase()
	label, _ := controller.labelFor(phase)
	remaining := controller.engine.Remaining()
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		Phase:     phase,
		Label:     label,
		Rep:       controller.cycle.Reps(),
		Remaining: remaining,
		Ticks:     controller.cycle.Ticks(),
	}
}

func (controller *Controller) next() {
	controller.display.RequestAttention()

	interval := controller.cycle.Advance()
	controller.display.SetTickText(controller.cycle.TickText())

	if interval.Phase == session.PhaseDone {
		controller.display.SetTimerText(controller.schedule.DoneLabel, controller.schedule.DoneColor)
		controller.logger.Info("cycle complete", "ticks", controller.cycle.Ticks())
		return
	}

	style := controller.styleFor(interval.Phase)
	controller.display.SetTimerText(style.Label, style.Color)
	controller.logger.Info("interval started",
		"phase", interval.Phase,
		"rep", interval.Rep,
		"duration", interval.Duration,
	)

	if interval.Phase != session.PhaseWork || interval.Rep > 1 {
		controller.notify(style.NotifyTitle, style.NotifyBody)
	}

	controller.engine.Start(interval.Seconds(), func(remaining int) {
		controller.display.SetCountdownText(countdown.FormatClock(remaining))
	}, controller.next)
}

func (controller *Controller) notify(title, message string) {
	if controller.notifier == nil || title == "" {
		return
	}
	if err := controller.notifier.Notify(title, message); err != nil {
		controller.logger.Warn("notification failed", "title", title, "error", err)
	}
}

func (controller *Controller) styleFor(phase session.Phase) model.PhaseStyle {
	switch phase {
	case session.PhaseShortBreak:
		return controller.schedule.ShortBreak
	case session.PhaseLongBreak:
		return controller.schedule.LongBreak
	default:
		return controller.schedule.Work
	}
}

func (controller *Controller) labelFor(phase session.Phase) (string, string) {
	switch phase {
	case session.PhaseIdle:
		return controller.schedule.IdleLabel, controller.schedule.IdleColor
	case session.PhaseDone:
		return controller.schedule.DoneLabel, controller.schedule.DoneColor
	default:
		style := controller.styleFor(phase)
		return style.Label, style.Color
	}
}

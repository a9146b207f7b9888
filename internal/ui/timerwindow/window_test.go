package timerwindow

import (
	"image/color"
	"io"
	"log/slog"
	"testing"
	"time"

	"tomato/internal/core/countdown/countdowntest"
	"tomato/internal/core/model"
	"tomato/internal/core/pomodoro"
	"tomato/internal/notify"

	"fyne.io/fyne/v2/test"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	app := test.NewTempApp(t)
	return New(app, Config{
		Title:     "Tomato",
		IdleLabel: "Timer",
		IdleClock: "25:00",
		IdleColor: "#9bdeac",
	})
}

func TestContentMeasuresWithDefaultFonts(t *testing.T) {
	timer := newTestWindow(t)
	timer.SetCountdownText("24:59")

	size := timer.Window().Content().MinSize()
	if size.Width < tomatoWidth || size.Height < tomatoHeight {
		t.Fatalf("content smaller than the tomato: %v", size)
	}
	if timer.clockText.MinSize().Width <= 0 {
		t.Fatalf("clock text was not measured")
	}
}

func TestButtonsInvokeHandlers(t *testing.T) {
	timer := newTestWindow(t)
	started, resets := 0, 0
	timer.SetOnStart(func() { started++ })
	timer.SetOnReset(func() { resets++ })

	test.Tap(timer.startButton)
	if started != 1 {
		t.Fatalf("expected start handler to run once, got %d", started)
	}

	test.Tap(timer.resetButton)
	if resets != 0 {
		t.Fatalf("single tap must not reset")
	}
	test.DoubleTap(timer.resetButton)
	if resets != 1 {
		t.Fatalf("expected double tap to reset, got %d", resets)
	}

	timer.SetStartEnabled(false)
	test.Tap(timer.startButton)
	if started != 1 {
		t.Fatalf("disabled start button should ignore taps")
	}
}

func TestDisplayUpdates(t *testing.T) {
	timer := newTestWindow(t)

	timer.SetTimerText("Rest", "#e7305b")
	timer.SetCountdownText("19:59")
	timer.SetTickText("✓✓")

	if timer.timerLabel.Text != "Rest" {
		t.Fatalf("unexpected label %q", timer.timerLabel.Text)
	}
	if timer.timerLabel.Color != (color.NRGBA{R: 0xe7, G: 0x30, B: 0x5b, A: 0xff}) {
		t.Fatalf("unexpected label color %v", timer.timerLabel.Color)
	}
	if timer.clockText.Text != "19:59" || timer.tickText.Text != "✓✓" {
		t.Fatalf("unexpected texts %q %q", timer.clockText.Text, timer.tickText.Text)
	}
}

func TestControllerDrivesWindow(t *testing.T) {
	timer := newTestWindow(t)
	scheduler := &countdowntest.ManualScheduler{}
	schedule := model.Schedule{
		Work:       model.PhaseStyle{Label: "Work", Color: "#9bdeac", Duration: 25 * time.Minute},
		ShortBreak: model.PhaseStyle{Label: "Break", Color: "#e2979c", Duration: 5 * time.Minute},
		LongBreak:  model.PhaseStyle{Label: "Rest", Color: "#e7305b", Duration: 20 * time.Minute},
		IdleLabel:  "Timer",
		IdleColor:  "#9bdeac",
		DoneLabel:  "Done!",
		DoneColor:  "#006400",
		TickMark:   "✓",
	}
	controller := pomodoro.New(schedule, timer, pomodoro.Options{
		Scheduler: scheduler,
		Notifier:  notify.Discard,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	timer.SetOnStart(controller.Start)
	timer.SetOnReset(controller.Reset)
	controller.Render()

	test.Tap(timer.startButton)
	if timer.timerLabel.Text != "Work" || timer.clockText.Text != "25:00" {
		t.Fatalf("unexpected state after start: %q %q", timer.timerLabel.Text, timer.clockText.Text)
	}
	if !timer.startButton.Disabled() {
		t.Fatalf("start should be disabled while counting")
	}

	scheduler.FireN(61)
	if timer.clockText.Text != "23:59" {
		t.Fatalf("unexpected clock %q", timer.clockText.Text)
	}

	test.DoubleTap(timer.resetButton)
	if timer.timerLabel.Text != "Timer" || timer.clockText.Text != "25:00" || timer.tickText.Text != "" {
		t.Fatalf("unexpected state after reset: %q %q %q", timer.timerLabel.Text, timer.clockText.Text, timer.tickText.Text)
	}
	if timer.startButton.Disabled() {
		t.Fatalf("start should be enabled after reset")
	}
	if scheduler.Fire() {
		t.Fatalf("no step should be pending after reset")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tomato/internal/core/countdown"
	"tomato/internal/core/pomodoro"
	"tomato/internal/notify"
	"tomato/internal/platform"
	"tomato/internal/storage"
	"tomato/internal/ui/timerwindow"
	"tomato/internal/ui/tray"
	"tomato/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func runApp(ctx context.Context) error {
	lock, err := platform.AcquireInstanceLock(ctx, appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			slog.Info("another timer is already open")
			return nil
		}
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	schedule, err := storage.DefaultSchedule()
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}

	release, err := platform.KeepAwake(ctx)
	if err != nil {
		slog.Warn("sleep prevention unavailable", "error", err)
	} else {
		defer release()
	}

	tomato := resources.Tomato()
	fyneApp := app.NewWithID("com.tomato.app")
	fyneApp.SetIcon(tomato)

	timer := timerwindow.New(fyneApp, timerwindow.Config{
		Title:     "Pomodoro (Tomato)",
		Image:     tomato,
		IdleLabel: schedule.IdleLabel,
		IdleClock: countdown.FormatClock(schedule.WorkSeconds()),
		IdleColor: schedule.IdleColor,
	})
	displays := pomodoro.Displays{timer}

	var controller *pomodoro.Controller
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, appName, tray.Callbacks{
			OnStart: func() { controller.Start() },
			OnReset: func() { controller.Reset() },
			OnShow:  timer.RequestAttention,
			OnQuit:  fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(tomato)
		displays = append(displays, trayManager)
	} else {
		slog.Debug("system tray unsupported on this platform")
	}

	controller = pomodoro.New(schedule, displays, pomodoro.Options{
		Scheduler: countdown.ClockScheduler{Dispatch: fyne.Do},
		Notifier:  notify.NewDesktop(appName, tomato.Content(), slog.Default().With("component", "notify")),
		Logger:    slog.Default().With("component", "pomodoro"),
	})
	timer.SetOnStart(controller.Start)
	timer.SetOnReset(controller.Reset)
	controller.Render()

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	timer.Window().SetMaster()
	timer.Show()
	fyneApp.Run()
	return nil
}

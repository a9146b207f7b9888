// Package notify sends desktop notifications for interval transitions.
package notify

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"
)

// Notifier delivers a single notification and reports failures.
type Notifier interface {
	Notify(title, message string) error
}

type desktopNotifier struct {
	icon any
}

func (desktop desktopNotifier) Notify(title, message string) error {
	if err := beeep.Notify(title, message, desktop.icon); err != nil {
		return fmt.Errorf("send notification %q: %w", title, err)
	}
	return nil
}

// NewDesktop returns a non-blocking notifier backed by the OS
// notification center. icon is a file path or raw image bytes.
func NewDesktop(appName string, icon any, logger *slog.Logger) *Async {
	if appName != "" {
		beeep.AppName = appName
	}
	if icon == nil {
		icon = ""
	}
	return NewAsync(desktopNotifier{icon: icon}, logger)
}

// Async hands every notification to its own goroutine so callers on the
// UI event loop never wait on the notification daemon.
type Async struct {
	next    Notifier
	logger  *slog.Logger
	pending sync.WaitGroup
}

// NewAsync wraps next. Failures are logged and dropped.
func NewAsync(next Notifier, logger *slog.Logger) *Async {
	if logger == nil {
		logger = slog.Default()
	}
	return &Async{next: next, logger: logger}
}

// Notify queues the notification and returns immediately.
func (async *Async) Notify(title, message string) error {
	async.pending.Add(1)
	go func() {
		defer async.pending.Done()
		if err := async.next.Notify(title, message); err != nil {
			async.logger.Warn("notification failed", "title", title, "error", err)
		}
	}()
	return nil
}

// Wait blocks until every queued notification has been delivered or failed.
func (async *Async) Wait() {
	async.pending.Wait()
}

// Func adapts a plain function to the notifier interface.
type Func func(title, message string) error

// Notify calls fn.
func (fn Func) Notify(title, message string) error {
	return fn(title, message)
}

// Discard drops every notification.
var Discard = Func(func(string, string) error { return nil })

package notify

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFuncForwardsArguments(t *testing.T) {
	var gotTitle, gotMessage string
	notifier := Func(func(title, message string) error {
		gotTitle = title
		gotMessage = message
		return errors.New("boom")
	})

	err := notifier.Notify("Break Time!", "Be back feeling refreshed.")
	if err == nil {
		t.Fatalf("expected error to be returned")
	}
	if gotTitle != "Break Time!" || gotMessage != "Be back feeling refreshed." {
		t.Fatalf("unexpected arguments %q %q", gotTitle, gotMessage)
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Notify("a", "b"); err != nil {
		t.Fatalf("discard returned %v", err)
	}
}

func TestAsyncReturnsBeforeDelivery(t *testing.T) {
	release := make(chan struct{})
	delivered := make(chan string, 1)
	async := NewAsync(Func(func(title, _ string) error {
		<-release
		delivered <- title
		return nil
	}), slog.New(slog.NewTextHandler(io.Discard, nil)))

	returned := make(chan error, 1)
	go func() {
		returned <- async.Notify("Rest Time!", "Take some rest.")
	}()

	select {
	case err := <-returned:
		if err != nil {
			t.Fatalf("notify returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("notify blocked on delivery")
	}

	close(release)
	async.Wait()
	if title := <-delivered; title != "Rest Time!" {
		t.Fatalf("unexpected delivered title %q", title)
	}
}

func TestAsyncLogsFailures(t *testing.T) {
	var logs bytes.Buffer
	async := NewAsync(Func(func(string, string) error {
		return errors.New("dbus unavailable")
	}), slog.New(slog.NewTextHandler(&logs, nil)))

	if err := async.Notify("Work Time!", "Time to focus."); err != nil {
		t.Fatalf("failures must not reach the caller: %v", err)
	}
	async.Wait()

	if !strings.Contains(logs.String(), "dbus unavailable") {
		t.Fatalf("expected failure to be logged, got %q", logs.String())
	}
}

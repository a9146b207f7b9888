package tray

import "testing"

func TestStatusLine(t *testing.T) {
	manager := New(nil, "Tomato", Callbacks{})
	if manager.Status() != "Status: idle" {
		t.Fatalf("unexpected initial status %q", manager.Status())
	}

	manager.SetTimerText("Work", "#9bdeac")
	manager.SetCountdownText("24:59")
	manager.SetTickText("✓✓")

	if got := manager.Status(); got != "Status: Work 24:59 ✓✓" {
		t.Fatalf("unexpected status %q", got)
	}

	manager.SetTickText("")
	if got := manager.Status(); got != "Status: Work 24:59" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestStartItemFollowsController(t *testing.T) {
	started, resets := 0, 0
	manager := New(nil, "Tomato", Callbacks{
		OnStart: func() { started++ },
		OnReset: func() { resets++ },
	})

	manager.SetStartEnabled(false)
	if manager.StartEnabled() {
		t.Fatalf("start item should be disabled")
	}
	manager.SetStartEnabled(true)
	if !manager.StartEnabled() {
		t.Fatalf("start item should be enabled")
	}

	manager.startItem.Action()
	manager.resetItem.Action()
	if started != 1 || resets != 1 {
		t.Fatalf("unexpected callback counts start=%d reset=%d", started, resets)
	}
}

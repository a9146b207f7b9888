//go:build darwin || linux

package platform

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStartInhibitorMissingBinary(t *testing.T) {
	_, err := startInhibitor(context.Background(), "tomato-no-such-inhibitor")
	if !errors.Is(err, ErrKeepAwakeUnsupported) {
		t.Fatalf("expected ErrKeepAwakeUnsupported, got %v", err)
	}
}

func TestStartInhibitorRelease(t *testing.T) {
	release, err := startInhibitor(context.Background(), "sleep", "60")
	if err != nil {
		t.Skipf("sleep unavailable: %v", err)
	}

	finished := make(chan struct{})
	go func() {
		release()
		release()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatalf("release did not stop the helper process")
	}
}

func TestStartInhibitorStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release, err := startInhibitor(ctx, "sleep", "60")
	if err != nil {
		t.Skipf("sleep unavailable: %v", err)
	}
	cancel()

	finished := make(chan struct{})
	go func() {
		release()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatalf("context cancellation did not stop the helper process")
	}
}

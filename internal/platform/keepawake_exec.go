//go:build darwin || linux

package platform

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// startInhibitor runs a helper process that holds the sleep lock while alive.
func startInhibitor(ctx context.Context, name string, args ...string) (Release, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found", ErrKeepAwakeUnsupported, name)
	}

	runCtx, cancel := context.WithCancel(ctx)
	command := exec.CommandContext(runCtx, path, args...)
	if err := command.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	done := make(chan struct{})
	go func() {
		_ = command.Wait()
		close(done)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}, nil
}

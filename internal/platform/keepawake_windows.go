package platform

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"syscall"
)

const (
	esContinuous     = 0x80000000
	esSystemRequired = 0x00000001
)

// Execution state is per thread, so the flag is held by a locked goroutine.
func keepAwake(ctx context.Context) (Release, error) {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	setThreadExecutionState := kernel32.NewProc("SetThreadExecutionState")
	if err := setThreadExecutionState.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeepAwakeUnsupported, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	started := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(done)

		result, _, err := setThreadExecutionState.Call(uintptr(esContinuous | esSystemRequired))
		if result == 0 {
			started <- fmt.Errorf("set thread execution state: %w", err)
			return
		}
		started <- nil

		<-runCtx.Done()
		setThreadExecutionState.Call(uintptr(esContinuous))
	}()

	if err := <-started; err != nil {
		cancel()
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}, nil
}

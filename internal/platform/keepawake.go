package platform

import (
	"context"
	"errors"
)

// ErrKeepAwakeUnsupported indicates sleep prevention is not available on this system.
var ErrKeepAwakeUnsupported = errors.New("sleep prevention unsupported")

// Release ends sleep prevention. It is safe to call more than once.
type Release func()

// KeepAwake stops the system from idling to sleep until the returned
// Release is called or ctx is cancelled.
func KeepAwake(ctx context.Context) (Release, error) {
	return keepAwake(ctx)
}

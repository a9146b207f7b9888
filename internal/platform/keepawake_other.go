//go:build !darwin && !linux && !windows

package platform

import "context"

func keepAwake(context.Context) (Release, error) {
	return nil, ErrKeepAwakeUnsupported
}

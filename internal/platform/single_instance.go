package platform

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another timer window is already open.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	lockPortBase  = 20000
	lockPortRange = 20000
)

// InstanceLock keeps a loopback port bound for the lifetime of the window.
type InstanceLock struct {
	listener net.Listener
}

// AcquireInstanceLock claims the loopback port derived from appName.
// Only a port that is already bound maps to ErrAlreadyRunning; any other
// listen failure is returned wrapped so the caller can report it.
func AcquireInstanceLock(ctx context.Context, appName string) (*InstanceLock, error) {
	return acquireLock(ctx, lockAddress(appName))
}

func acquireLock(ctx context.Context, address string) (*InstanceLock, error) {
	var config net.ListenConfig
	listener, err := config.Listen(ctx, "tcp", address)
	switch {
	case err == nil:
		return &InstanceLock{listener: listener}, nil
	case isAddrInUse(err):
		return nil, fmt.Errorf("%w on %s", ErrAlreadyRunning, address)
	default:
		return nil, fmt.Errorf("acquire instance lock on %s: %w", address, err)
	}
}

// Release unbinds the port. Calling it twice is harmless.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	listener := lock.listener
	lock.listener = nil
	return listener.Close()
}

func lockAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	port := lockPortBase + int(hash.Sum32()%lockPortRange)
	return net.JoinHostPort("127.0.0.1", fmt.Sprint(port))
}

package platform

import (
	"context"
	"os"
	"strconv"
)

func keepAwake(ctx context.Context) (Release, error) {
	// -w ties the assertion to our pid so it also ends if we crash.
	return startInhibitor(ctx, "caffeinate", "-i", "-w", strconv.Itoa(os.Getpid()))
}

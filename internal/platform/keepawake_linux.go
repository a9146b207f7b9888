package platform

import "context"

func keepAwake(ctx context.Context) (Release, error) {
	return startInhibitor(ctx,
		"systemd-inhibit",
		"--what=idle:sleep",
		"--who=Tomato",
		"--why=Pomodoro session in progress",
		"--mode=block",
		"sleep", "infinity",
	)
}

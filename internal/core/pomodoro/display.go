package pomodoro

// Display is the surface the controller renders onto.
type Display interface {
	SetTimerText(label string, color string)
	SetCountdownText(text string)
	SetTickText(text string)
	SetStartEnabled(enabled bool)
	RequestAttention()
}

// Notifier delivers desktop notifications. Notify runs on the UI loop, so
// implementations that can block should hand off to another goroutine.
type Notifier interface {
	Notify(title, message string) error
}

// Displays fans every update out to several surfaces.
type Displays []Display

func (displays Displays) SetTimerText(label string, color string) {
	for _, display := range displays {
		display.SetTimerText(label, color)
	}
}

func (displays Displays) SetCountdownText(text string) {
	for _, display := range displays {
		display.SetCountdownText(text)
	}
}

func (displays Displays) SetTickText(text string) {
	for _, display := range displays {
		display.SetTickText(text)
	}
}

func (displays Displays) SetStartEnabled(enabled bool) {
	for _, display := range displays {
		display.SetStartEnabled(enabled)
	}
}

func (displays Displays) RequestAttention() {
	for _, display := range displays {
		display.RequestAttention()
	}
}

package timerwindow

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ResetButton is a button that only reacts to double taps.
type ResetButton struct {
	widget.Button
	OnDoubleTapped func()
}

// NewResetButton creates a double-tap button with the given label.
func NewResetButton(label string, onDoubleTapped func()) *ResetButton {
	button := &ResetButton{OnDoubleTapped: onDoubleTapped}
	button.Text = label
	button.ExtendBaseWidget(button)
	return button
}

// DoubleTapped implements fyne.DoubleTappable.
func (button *ResetButton) DoubleTapped(*fyne.PointEvent) {
	if button.Disabled() || button.OnDoubleTapped == nil {
		return
	}
	button.OnDoubleTapped()
}

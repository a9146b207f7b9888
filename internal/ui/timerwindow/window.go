package timerwindow

import (
	"tomato/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Config defines the window visuals.
type Config struct {
	Title     string
	Image     fyne.Resource
	IdleLabel string
	IdleClock string
	IdleColor string
}

// Window is the single timer window.
type Window struct {
	window      fyne.Window
	timerLabel  *canvas.Text
	clockText   *canvas.Text
	tickText    *canvas.Text
	startButton *widget.Button
	resetButton *ResetButton
	onStart     func()
	onReset     func()
}

const (
	labelTextSize = 45
	clockTextSize = 35
	tickTextSize  = 35
	tomatoWidth   = 200
	tomatoHeight  = 224
)

// New builds the timer window.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if config.Image != nil {
		window.SetIcon(config.Image)
	} else if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timerLabel := canvas.NewText(config.IdleLabel, theme.ColorOr(config.IdleColor, theme.Green))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Monospace: true}
	timerLabel.TextSize = labelTextSize

	image := canvas.NewImageFromResource(config.Image)
	image.FillMode = canvas.ImageFillContain

	clockText := canvas.NewText(config.IdleClock, theme.ClockText)
	clockText.Alignment = fyne.TextAlignCenter
	clockText.TextStyle = fyne.TextStyle{Monospace: true}
	clockText.TextSize = clockTextSize

	tickText := canvas.NewText("", theme.Green)
	tickText.Alignment = fyne.TextAlignCenter
	tickText.TextStyle = fyne.TextStyle{Bold: true}
	tickText.TextSize = tickTextSize

	timer := &Window{
		window:     window,
		timerLabel: timerLabel,
		clockText:  clockText,
		tickText:   tickText,
	}

	timer.startButton = widget.NewButton("Start", func() {
		if timer.onStart != nil {
			timer.onStart()
		}
	})
	timer.resetButton = NewResetButton("Reset", func() {
		if timer.onReset != nil {
			timer.onReset()
		}
	})

	tomato := container.New(&tomatoLayout{}, image, clockText)
	buttons := container.NewHBox(timer.startButton, layout.NewSpacer(), timer.resetButton)
	content := container.NewVBox(
		timerLabel,
		container.NewCenter(tomato),
		buttons,
		tickText,
	)

	background := canvas.NewRectangle(theme.Background)
	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(420, 480))

	return timer
}

// SetOnStart sets the Start handler.
func (timer *Window) SetOnStart(handler func()) {
	timer.onStart = handler
}

// SetOnReset sets the double-tap Reset handler.
func (timer *Window) SetOnReset(handler func()) {
	timer.onReset = handler
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
}

// Window exposes the underlying fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

// SetTimerText updates the phase label.
func (timer *Window) SetTimerText(label string, hexColor string) {
	timer.timerLabel.Text = label
	timer.timerLabel.Color = theme.ColorOr(hexColor, theme.Green)
	timer.timerLabel.Refresh()
}

// SetCountdownText updates the clock drawn over the tomato.
func (timer *Window) SetCountdownText(text string) {
	timer.clockText.Text = text
	timer.clockText.Refresh()
}

// SetTickText updates the completed-work marks.
func (timer *Window) SetTickText(text string) {
	timer.tickText.Text = text
	timer.tickText.Refresh()
}

// SetStartEnabled toggles the Start button.
func (timer *Window) SetStartEnabled(enabled bool) {
	if enabled {
		timer.startButton.Enable()
		return
	}
	timer.startButton.Disable()
}

// RequestAttention brings the window to the front.
func (timer *Window) RequestAttention() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// tomatoLayout draws the clock slightly below the centre of the tomato.
type tomatoLayout struct{}

func (layout *tomatoLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	image := objects[0]
	clock := objects[1]

	image.Move(fyne.NewPos(0, 0))
	image.Resize(size)

	clockSize := clock.MinSize()
	centreY := size.Height * 130 / tomatoHeight
	clock.Move(fyne.NewPos((size.Width-clockSize.Width)/2, centreY-clockSize.Height/2))
	clock.Resize(clockSize)
}

func (layout *tomatoLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := fyne.NewSize(tomatoWidth, tomatoHeight)
	if len(objects) < 2 {
		return size
	}
	clockSize := objects[1].MinSize()
	if clockSize.Width > size.Width {
		size.Width = clockSize.Width
	}
	return size
}

package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart func()
	OnReset func()
	OnShow  func()
	OnQuit  func()
}

// Manager mirrors the timer state into the system tray menu.
type Manager struct {
	app        desktop.App
	title      string
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	resetItem  *fyne.MenuItem
	showItem   *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
	phase      string
	clock      string
	ticks      string
}

// New creates a tray manager. app may be nil when no tray is available.
func New(app desktop.App, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})
	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	manager.showItem = fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// StartEnabled reports whether the Start item can be used.
func (manager *Manager) StartEnabled() bool {
	return !manager.startItem.Disabled
}

func (manager *Manager) SetTimerText(label string, _ string) {
	manager.phase = label
	manager.refreshStatus()
}

func (manager *Manager) SetCountdownText(text string) {
	manager.clock = text
	manager.refreshStatus()
}

func (manager *Manager) SetTickText(text string) {
	manager.ticks = text
	manager.refreshStatus()
}

func (manager *Manager) SetStartEnabled(enabled bool) {
	manager.startItem.Disabled = !enabled
	manager.refreshMenu()
}

// RequestAttention is a no-op; the tray has nothing to raise.
func (manager *Manager) RequestAttention() {}

func (manager *Manager) refreshStatus() {
	status := manager.phase
	if manager.clock != "" {
		status = fmt.Sprintf("%s %s", status, manager.clock)
	}
	if manager.ticks != "" {
		status = fmt.Sprintf("%s %s", status, manager.ticks)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.resetItem,
		manager.showItem,
		manager.quitItem,
	))
}

package tray

import (
	"fmt"

	"countdown/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStart       func()
	OnTogglePause func()
	OnReset       func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	resetItem  *fyne.MenuItem
	state      timer.State
	display    string
}

// New creates a tray manager and installs its menu.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		state:     timer.StateIdle,
		display:   "00:00:00",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", func() { call(manager.callbacks.OnStart) })
	manager.pauseItem = fyne.NewMenuItem("Pause", func() { call(manager.callbacks.OnTogglePause) })
	manager.resetItem = fyne.NewMenuItem("Reset", func() { call(manager.callbacks.OnReset) })

	manager.applyState()
	manager.refreshMenu()
	return manager
}

// Update reflects an engine event in the menu.
func (manager *Manager) Update(event timer.Event) {
	manager.display = event.Display
	manager.state = event.State
	manager.applyState()
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) applyState() {
	manager.statusItem.Label = fmt.Sprintf("%s (%s)", manager.display, manager.state)
	manager.startItem.Disabled = manager.state.Active()
	manager.pauseItem.Disabled = !manager.state.Active()
	if manager.state == timer.StatePaused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

func (manager *Manager) menu() *fyne.Menu {
	return fyne.NewMenu("Countdown",
		manager.statusItem,
		fyne.NewMenuItem("Show", func() { call(manager.callbacks.OnShow) }),
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) }),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu())
	}
}

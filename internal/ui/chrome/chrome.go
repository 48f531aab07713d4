// Package chrome switches the main window between the decorated normal
// layout and the compact minimal layout used while a timer is active.
package chrome

import (
	"log"
	"sync"

	"countdown/internal/core/model"
	"countdown/internal/core/timer"
)

// WindowControl is the host window API.
type WindowControl interface {
	SetDecorations(enabled bool) error
	SetWindowSize(width, height int) error
}

// Dispatcher runs fn asynchronously on the UI thread.
type Dispatcher func(fn func())

// Controller maps engine states onto window chrome.
type Controller struct {
	mu         sync.Mutex
	config     model.ChromeConfig
	control    WindowControl
	dispatch   Dispatcher
	logger     *log.Logger
	applied    bool
	lastActive bool
}

// NewController creates a controller. A nil dispatch runs calls inline.
func NewController(config model.ChromeConfig, control WindowControl, dispatch Dispatcher, logger *log.Logger) *Controller {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		config:   config,
		control:  control,
		dispatch: dispatch,
		logger:   logger,
	}
}

// Apply switches chrome when state enters or leaves the active group.
func (controller *Controller) Apply(state timer.State) {
	active := state.Active()

	controller.mu.Lock()
	if controller.applied && controller.lastActive == active {
		controller.mu.Unlock()
		return
	}
	controller.applied = true
	controller.lastActive = active
	controller.mu.Unlock()

	mode := controller.config.Normal
	if active {
		mode = controller.config.Minimal
	}
	controller.dispatch(func() {
		controller.applyMode(mode)
	})
}

func (controller *Controller) applyMode(mode model.ChromeMode) {
	if controller.control == nil {
		return
	}
	if err := controller.control.SetDecorations(mode.Decorated); err != nil {
		controller.logger.Printf("chrome: set decorations: %v", err)
		return
	}
	if err := controller.control.SetWindowSize(mode.Size.Width, mode.Size.Height); err != nil {
		controller.logger.Printf("chrome: set window size: %v", err)
	}
}

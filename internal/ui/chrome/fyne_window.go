package chrome

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// ErrDecorationsUnsupported indicates the driver cannot create undecorated windows.
var ErrDecorationsUnsupported = errors.New("undecorated windows unsupported")

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// FyneWindow implements WindowControl by moving the content between the
// decorated main window and an undecorated splash window. Methods must run on
// the fyne UI thread.
type FyneWindow struct {
	mu      sync.Mutex
	app     fyne.App
	main    fyne.Window
	splash  fyne.Window
	current fyne.Window
}

// NewFyneWindow wraps the decorated main window.
func NewFyneWindow(app fyne.App, main fyne.Window) *FyneWindow {
	return &FyneWindow{
		app:     app,
		main:    main,
		current: main,
	}
}

// Current returns the window that currently shows the content.
func (window *FyneWindow) Current() fyne.Window {
	window.mu.Lock()
	defer window.mu.Unlock()
	return window.current
}

// SetDecorations shows the content in the decorated or undecorated window.
func (window *FyneWindow) SetDecorations(enabled bool) error {
	window.mu.Lock()
	defer window.mu.Unlock()

	target := window.main
	if !enabled {
		splash, err := window.splashLocked()
		if err != nil {
			return err
		}
		target = splash
	}
	if target == window.current {
		return nil
	}

	content := window.current.Content()
	window.current.SetContent(container.NewStack())
	target.SetContent(content)
	target.Show()
	window.current.Hide()
	window.current = target
	return nil
}

// SetWindowSize resizes and centers the visible window.
func (window *FyneWindow) SetWindowSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	window.mu.Lock()
	defer window.mu.Unlock()
	window.current.Resize(fyne.NewSize(float32(width), float32(height)))
	window.current.CenterOnScreen()
	return nil
}

func (window *FyneWindow) splashLocked() (fyne.Window, error) {
	if window.splash != nil {
		return window.splash, nil
	}
	driver, ok := window.app.Driver().(splashWindowDriver)
	if !ok {
		return nil, ErrDecorationsUnsupported
	}
	splash := driver.CreateSplashWindow()
	if window.app.Icon() != nil {
		splash.SetIcon(window.app.Icon())
	}
	splash.SetPadded(false)
	window.splash = splash
	return splash, nil
}

package model

import "time"

// Geometry is a window size in device-independent pixels.
type Geometry struct {
	Width  int
	Height int
}

// ChromeMode describes the window decoration and size for one visual mode.
type ChromeMode struct {
	Decorated bool
	Size      Geometry
}

// ChromeConfig holds the window chrome used while the timer is active
// (running or paused) and while it is idle.
type ChromeConfig struct {
	Minimal ChromeMode
	Normal  ChromeMode
}

// DefaultChromeConfig returns the stock minimal and normal window layouts.
func DefaultChromeConfig() ChromeConfig {
	return ChromeConfig{
		Minimal: ChromeMode{
			Decorated: false,
			Size:      Geometry{Width: 700, Height: 150},
		},
		Normal: ChromeMode{
			Decorated: true,
			Size:      Geometry{Width: 500, Height: 700},
		},
	}
}

// Timing contains the fixed periods of the widget.
type Timing struct {
	TickInterval  time.Duration
	FlashDuration time.Duration
}

// DefaultTiming returns a one second tick and a half second flash.
func DefaultTiming() Timing {
	return Timing{
		TickInterval:  time.Second,
		FlashDuration: 500 * time.Millisecond,
	}
}

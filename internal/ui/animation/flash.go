package animation

import (
	"context"
	"sync"
	"time"
)

// Highlighter switches the highlight of a display on or off.
type Highlighter func(on bool)

// Flash runs transient highlight effects. Starting a new flash cancels the
// previous one.
type Flash struct {
	mu         sync.Mutex
	highlight  Highlighter
	cancel     context.CancelFunc
	generation uint64
}

// NewFlash creates a flash effect driving highlight.
func NewFlash(highlight Highlighter) *Flash {
	return &Flash{highlight: highlight}
}

// Flash highlights for duration and reverts.
func (flash *Flash) Flash(duration time.Duration) {
	flash.Start(context.Background(), duration)
}

// Start highlights until duration elapses or ctx is done.
func (flash *Flash) Start(ctx context.Context, duration time.Duration) {
	flash.mu.Lock()
	if flash.cancel != nil {
		flash.cancel()
	}
	flash.generation++
	generation := flash.generation
	runCtx, cancel := context.WithCancel(ctx)
	flash.cancel = cancel
	flash.mu.Unlock()

	flash.highlight(true)
	go func() {
		sleepWithContext(runCtx, duration)
		flash.end(generation, cancel)
	}()
}

// Stop cancels any active flash and reverts the highlight.
func (flash *Flash) Stop() {
	flash.mu.Lock()
	active := flash.cancel != nil
	if active {
		flash.cancel()
		flash.cancel = nil
		flash.generation++
	}
	flash.mu.Unlock()

	if active {
		flash.highlight(false)
	}
}

// end reverts the highlight unless a newer flash or Stop took over.
func (flash *Flash) end(generation uint64, cancel context.CancelFunc) {
	cancel()

	flash.mu.Lock()
	owner := generation == flash.generation
	if owner {
		flash.cancel = nil
	}
	flash.mu.Unlock()

	if owner {
		flash.highlight(false)
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

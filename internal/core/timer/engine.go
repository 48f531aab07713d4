package timer

import (
	"sync"
	"time"

	"countdown/internal/core/model"
)

// Completer is notified once each time a countdown reaches zero.
type Completer interface {
	CountdownComplete()
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func()

// CountdownComplete calls fn.
func (fn CompleterFunc) CountdownComplete() {
	fn()
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
	Scheduler    Scheduler
	Now          func() time.Time
}

// Engine is the countdown/stopwatch state machine.
type Engine struct {
	mu         sync.Mutex
	options    Config
	completer  Completer
	mode       Mode
	state      State
	initial    int64
	current    int64
	task       Task
	generation uint64
	events     []chan Event
	closed     bool
}

// New creates an idle countdown engine at zero.
func New(options Config, completer Completer) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = TickerScheduler{}
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Engine{
		options:   options,
		completer: completer,
		mode:      ModeCountDown,
		state:     StateIdle,
	}
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	if engine.closed {
		close(ch)
	} else {
		engine.events = append(engine.events, ch)
	}
	engine.mu.Unlock()
	return ch
}

// Snapshot returns the current engine state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return Snapshot{
		Mode:    engine.mode,
		State:   engine.state,
		Seconds: engine.current,
		Initial: engine.initial,
	}
}

// SetMode switches the counting direction. It is ignored unless the engine is
// idle and reports whether the mode was applied.
func (engine *Engine) SetMode(mode Mode) bool {
	if mode != ModeCountUp && mode != ModeCountDown {
		return false
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.state != StateIdle {
		return false
	}
	engine.mode = mode
	engine.resetLocked()
	engine.emitDisplayLocked()
	return true
}

// SetDuration parses an HH:MM:SS value and records it as the countdown start.
// Text without three fields is ignored.
func (engine *Engine) SetDuration(text string) bool {
	seconds, ok := model.ParseHMS(text)
	if !ok {
		return false
	}
	engine.SetDurationSeconds(seconds)
	return true
}

// SetDurationSeconds records the countdown start. While running or paused the
// value takes effect on the next reset.
func (engine *Engine) SetDurationSeconds(seconds int64) {
	if seconds < 0 {
		seconds = 0
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.initial = seconds
	if engine.state == StateIdle {
		engine.resetLocked()
		engine.emitDisplayLocked()
	}
}

// Start begins ticking from the current value.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.state == StateRunning || engine.closed {
		return
	}
	engine.state = StateRunning
	engine.scheduleLocked()
	engine.emitDisplayLocked()
}

// Pause freezes the timer without touching the counted value.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.state != StateRunning {
		return
	}
	engine.cancelLocked()
	engine.state = StatePaused
	engine.emitDisplayLocked()
}

// Resume continues a paused timer.
func (engine *Engine) Resume() {
	engine.mu.Lock()
	paused := engine.state == StatePaused
	engine.mu.Unlock()
	if paused {
		engine.Start()
	}
}

// TogglePause pauses a running timer or resumes a paused one.
func (engine *Engine) TogglePause() {
	engine.mu.Lock()
	state := engine.state
	engine.mu.Unlock()

	switch state {
	case StateRunning:
		engine.Pause()
	case StatePaused:
		engine.Resume()
	}
}

// Reset stops the timer and restores the baseline of the current mode.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.resetLocked()
	engine.emitDisplayLocked()
}

// Close stops ticking and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.cancelLocked()
	engine.state = StateIdle
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) tick(generation uint64, tickTime time.Time) {
	engine.mu.Lock()
	if engine.state != StateRunning || generation != engine.generation {
		engine.mu.Unlock()
		return
	}

	completed := false
	if engine.mode == ModeCountDown {
		engine.current--
		if engine.current <= 0 {
			engine.current = 0
			engine.cancelLocked()
			engine.state = StateIdle
			completed = true
		}
	} else {
		engine.current++
	}
	engine.emitLocked(engine.eventLocked(EventDisplay, tickTime))
	if completed {
		engine.emitLocked(engine.eventLocked(EventCompleted, tickTime))
	}
	completer := engine.completer
	engine.mu.Unlock()

	if completed && completer != nil {
		completer.CountdownComplete()
	}
}

func (engine *Engine) scheduleLocked() {
	engine.cancelLocked()
	engine.generation++
	generation := engine.generation
	engine.task = engine.options.Scheduler.Every(engine.options.TickInterval, func(tickTime time.Time) {
		engine.tick(generation, tickTime)
	})
}

// cancelLocked stops the active task. Bumping the generation discards a tick
// that is already waiting on the lock.
func (engine *Engine) cancelLocked() {
	if engine.task == nil {
		return
	}
	engine.task.Stop()
	engine.task = nil
	engine.generation++
}

func (engine *Engine) resetLocked() {
	engine.cancelLocked()
	engine.state = StateIdle
	if engine.mode == ModeCountDown {
		engine.current = engine.initial
	} else {
		engine.current = 0
	}
}

func (engine *Engine) eventLocked(eventType EventType, at time.Time) Event {
	return Event{
		Type:    eventType,
		Mode:    engine.mode,
		State:   engine.state,
		Seconds: engine.current,
		Display: model.FormatElapsed(engine.current),
		At:      at,
	}
}

func (engine *Engine) emitDisplayLocked() {
	engine.emitLocked(engine.eventLocked(EventDisplay, engine.options.Now()))
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

package timer

import "time"

// Mode is the counting direction.
type Mode string

const (
	ModeCountUp   Mode = "up"
	ModeCountDown Mode = "down"
)

// State is the run state of the engine.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// Active reports whether the timer occupies the minimal window mode.
func (state State) Active() bool {
	return state == StateRunning || state == StatePaused
}

// EventType defines the type of engine event.
type EventType string

const (
	EventDisplay   EventType = "display"
	EventCompleted EventType = "completed"
)

// Event represents an engine update for observers.
type Event struct {
	Type    EventType
	Mode    Mode
	State   State
	Seconds int64
	Display string
	At      time.Time
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Mode    Mode
	State   State
	Seconds int64
	Initial int64
}

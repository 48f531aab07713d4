package alert

import "time"

// Step sets the tone gain from Offset until the next step.
type Step struct {
	Offset time.Duration
	Gain   float64
}

// Pattern is a gated sine tone described by timed gain steps.
type Pattern struct {
	Frequency float64
	Length    time.Duration
	Steps     []Step
}

// DefaultPattern is three 200ms pulses of an 800Hz tone separated by 100ms
// gaps inside a 900ms envelope.
func DefaultPattern() Pattern {
	return Pattern{
		Frequency: 800,
		Length:    900 * time.Millisecond,
		Steps: []Step{
			{Offset: 0, Gain: 0.5},
			{Offset: 200 * time.Millisecond, Gain: 0},
			{Offset: 300 * time.Millisecond, Gain: 0.5},
			{Offset: 500 * time.Millisecond, Gain: 0},
			{Offset: 600 * time.Millisecond, Gain: 0.5},
			{Offset: 800 * time.Millisecond, Gain: 0},
		},
	}
}

// GainAt returns the gain in effect at offset. Steps must be sorted by offset.
func (pattern Pattern) GainAt(offset time.Duration) float64 {
	if offset < 0 || offset >= pattern.Length {
		return 0
	}
	gain := 0.0
	for _, step := range pattern.Steps {
		if step.Offset > offset {
			break
		}
		gain = step.Gain
	}
	return gain
}

// Pulses counts the silent-to-audible transitions.
func (pattern Pattern) Pulses() int {
	pulses := 0
	previous := 0.0
	for _, step := range pattern.Steps {
		if step.Offset >= pattern.Length {
			break
		}
		if previous == 0 && step.Gain > 0 {
			pulses++
		}
		previous = step.Gain
	}
	return pulses
}

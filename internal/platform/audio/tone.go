package audio

import (
	"math"

	"countdown/internal/core/alert"

	"github.com/faiface/beep"
)

// PulseTone streams a sine tone gated by an alert pattern.
type PulseTone struct {
	sampleRate beep.SampleRate
	pattern    alert.Pattern
	position   int
	total      int
}

// NewPulseTone renders pattern at the given sample rate.
func NewPulseTone(sampleRate beep.SampleRate, pattern alert.Pattern) *PulseTone {
	return &PulseTone{
		sampleRate: sampleRate,
		pattern:    pattern,
		total:      sampleRate.N(pattern.Length),
	}
}

// Stream fills samples until the pattern envelope ends.
func (tone *PulseTone) Stream(samples [][2]float64) (int, bool) {
	if tone.position >= tone.total {
		return 0, false
	}
	step := 2 * math.Pi * tone.pattern.Frequency / float64(tone.sampleRate)
	n := 0
	for n < len(samples) && tone.position < tone.total {
		gain := tone.pattern.GainAt(tone.sampleRate.D(tone.position))
		value := gain * math.Sin(step*float64(tone.position))
		samples[n][0] = value
		samples[n][1] = value
		tone.position++
		n++
	}
	return n, true
}

// Err always returns nil.
func (tone *PulseTone) Err() error {
	return nil
}

// Len returns the total number of samples.
func (tone *PulseTone) Len() int {
	return tone.total
}

package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPatternGain(t *testing.T) {
	pattern := DefaultPattern()

	tests := []struct {
		offset time.Duration
		want   float64
	}{
		{0, 0.5},
		{199 * time.Millisecond, 0.5},
		{200 * time.Millisecond, 0},
		{299 * time.Millisecond, 0},
		{300 * time.Millisecond, 0.5},
		{550 * time.Millisecond, 0},
		{650 * time.Millisecond, 0.5},
		{800 * time.Millisecond, 0},
		{899 * time.Millisecond, 0},
		{900 * time.Millisecond, 0},
		{-time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.offset.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, pattern.GainAt(tt.offset))
		})
	}
}

func TestDefaultPatternShape(t *testing.T) {
	pattern := DefaultPattern()
	assert.Equal(t, 800.0, pattern.Frequency)
	assert.Equal(t, 900*time.Millisecond, pattern.Length)
	assert.Equal(t, 3, pattern.Pulses())
}

func TestPulsesIgnoresStepsPastLength(t *testing.T) {
	pattern := Pattern{
		Length: 100 * time.Millisecond,
		Steps: []Step{
			{Offset: 0, Gain: 1},
			{Offset: 50 * time.Millisecond, Gain: 0},
			{Offset: 200 * time.Millisecond, Gain: 1},
		},
	}
	assert.Equal(t, 1, pattern.Pulses())
}

package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"seconds", 59, "00:00:59"},
		{"minute rollover", 60, "00:01:00"},
		{"hour", 3600, "01:00:00"},
		{"past a day", 25 * 3600, "25:00:00"},
		{"three digit hours", 100*3600 + 2*60 + 3, "100:02:03"},
		{"negative", -61, "-00:01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.seconds))
		})
	}
}

func TestFormatElapsedComponents(t *testing.T) {
	for _, h := range []int64{0, 1, 9, 23, 99, 100, 1234} {
		for _, m := range []int64{0, 7, 59} {
			for _, s := range []int64{0, 5, 59} {
				want := fmt.Sprintf("%02d:%02d:%02d", h, m, s)
				assert.Equal(t, want, FormatElapsed(h*3600+m*60+s))
			}
		}
	}
}

func TestParseHMS(t *testing.T) {
	tests := []struct {
		input  string
		want   int64
		wantOK bool
	}{
		{"00:00:05", 5, true},
		{"01:02:03", 3723, true},
		{" 00:10:00 ", 600, true},
		{"aa:bb:cc", 0, true},
		{"1x:2:3y", 3600 + 120 + 3, true},
		{"::", 0, true},
		{"-1:00:10", 10, true},
		{"00:90:00", 5400, true},
		{"10:00", 0, false},
		{"", 0, false},
		{"1:2:3:4", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseHMS(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultChromeConfig(t *testing.T) {
	chrome := DefaultChromeConfig()
	assert.False(t, chrome.Minimal.Decorated)
	assert.Equal(t, Geometry{Width: 700, Height: 150}, chrome.Minimal.Size)
	assert.True(t, chrome.Normal.Decorated)
	assert.Equal(t, Geometry{Width: 500, Height: 700}, chrome.Normal.Size)
}

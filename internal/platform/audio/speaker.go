package audio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"countdown/internal/core/alert"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// ErrBusy indicates another alert currently holds the speaker.
var ErrBusy = errors.New("audio output busy")

// Config contains speaker options.
type Config struct {
	SampleRate beep.SampleRate
	// Volume is relative to unity gain on a base-2 scale, like effects.Volume.
	Volume float64
}

// DefaultConfig returns a 44.1kHz speaker at unity volume.
func DefaultConfig() Config {
	return Config{SampleRate: 44100}
}

// Speaker opens the system audio device through beep's speaker package.
type Speaker struct {
	mu     sync.Mutex
	config Config
	inUse  bool
}

// NewSpeaker creates an alert output backed by the system speaker.
func NewSpeaker(config Config) *Speaker {
	if config.SampleRate <= 0 {
		config.SampleRate = DefaultConfig().SampleRate
	}
	return &Speaker{config: config}
}

// Open initializes the speaker. The returned player must be closed.
func (output *Speaker) Open() (alert.Player, error) {
	output.mu.Lock()
	defer output.mu.Unlock()
	if output.inUse {
		return nil, ErrBusy
	}

	sampleRate := output.config.SampleRate
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	output.inUse = true
	return &speakerPlayer{output: output}, nil
}

func (output *Speaker) release() {
	output.mu.Lock()
	defer output.mu.Unlock()
	if !output.inUse {
		return
	}
	speaker.Close()
	output.inUse = false
}

type speakerPlayer struct {
	output *Speaker
	once   sync.Once
}

// Play blocks until the pattern finished or ctx is done.
func (player *speakerPlayer) Play(ctx context.Context, pattern alert.Pattern) error {
	config := player.output.config
	done := make(chan struct{})
	tone := &effects.Volume{
		Streamer: NewPulseTone(config.SampleRate, pattern),
		Base:     2,
		Volume:   config.Volume,
	}
	speaker.Play(beep.Seq(tone, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

func (player *speakerPlayer) Close() error {
	player.once.Do(player.output.release)
	return nil
}

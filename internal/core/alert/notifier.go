package alert

import (
	"context"
	"log"
	"time"
)

// Flasher highlights the time display for a short period.
type Flasher interface {
	Flash(duration time.Duration)
}

// FlasherFunc adapts a function to the Flasher interface.
type FlasherFunc func(duration time.Duration)

// Flash calls fn.
func (fn FlasherFunc) Flash(duration time.Duration) {
	fn(duration)
}

// Player plays patterns on an acquired audio device.
type Player interface {
	Play(ctx context.Context, pattern Pattern) error
	Close() error
}

// Output acquires an audio device for the duration of one alert.
type Output interface {
	Open() (Player, error)
}

// Preference reports whether the audible alert is enabled.
type Preference interface {
	AlertEnabled() bool
}

// PreferenceFunc adapts a function to the Preference interface.
type PreferenceFunc func() bool

// AlertEnabled calls fn.
func (fn PreferenceFunc) AlertEnabled() bool {
	return fn()
}

// Config contains the collaborators of a Notifier.
type Config struct {
	Flasher       Flasher
	Output        Output
	Preference    Preference
	Pattern       Pattern
	FlashDuration time.Duration
	Logger        *log.Logger
}

// Notifier reacts to a finished countdown with a flash and an optional beep.
type Notifier struct {
	config Config
}

// New creates a Notifier. Missing pieces fall back to defaults.
func New(config Config) *Notifier {
	if config.FlashDuration <= 0 {
		config.FlashDuration = 500 * time.Millisecond
	}
	if len(config.Pattern.Steps) == 0 {
		config.Pattern = DefaultPattern()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Notifier{config: config}
}

// CountdownComplete flashes and alerts without blocking the caller.
func (notifier *Notifier) CountdownComplete() {
	go notifier.Notify(context.Background())
}

// Notify flashes the display and then plays the alert if it is enabled.
func (notifier *Notifier) Notify(ctx context.Context) {
	notifier.Flash()
	enabled := notifier.config.Preference != nil && notifier.config.Preference.AlertEnabled()
	notifier.Alert(ctx, enabled)
}

// Flash asks the host UI for a transient highlight.
func (notifier *Notifier) Flash() {
	if notifier.config.Flasher == nil {
		return
	}
	notifier.config.Flasher.Flash(notifier.config.FlashDuration)
}

// Alert plays the pulse pattern when enabled. Failures are logged only.
func (notifier *Notifier) Alert(ctx context.Context, enabled bool) {
	if !enabled || notifier.config.Output == nil {
		return
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			notifier.config.Logger.Printf("alert: audio output panicked: %v", recovered)
		}
	}()

	player, err := notifier.config.Output.Open()
	if err != nil {
		notifier.config.Logger.Printf("alert: open audio output: %v", err)
		return
	}
	defer func() {
		if err := player.Close(); err != nil {
			notifier.config.Logger.Printf("alert: close audio output: %v", err)
		}
	}()

	if err := player.Play(ctx, notifier.config.Pattern); err != nil {
		notifier.config.Logger.Printf("alert: play pattern: %v", err)
	}
}

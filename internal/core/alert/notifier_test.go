package alert

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFlasher struct {
	mu        sync.Mutex
	durations []time.Duration
}

func (flasher *recordingFlasher) Flash(duration time.Duration) {
	flasher.mu.Lock()
	defer flasher.mu.Unlock()
	flasher.durations = append(flasher.durations, duration)
}

func (flasher *recordingFlasher) count() int {
	flasher.mu.Lock()
	defer flasher.mu.Unlock()
	return len(flasher.durations)
}

type fakePlayer struct {
	played  []Pattern
	playErr error
	closed  int
	panics  bool
}

func (player *fakePlayer) Play(_ context.Context, pattern Pattern) error {
	if player.panics {
		panic("device vanished")
	}
	player.played = append(player.played, pattern)
	return player.playErr
}

func (player *fakePlayer) Close() error {
	player.closed++
	return nil
}

type fakeOutput struct {
	player  *fakePlayer
	openErr error
	opened  int
}

func (output *fakeOutput) Open() (Player, error) {
	output.opened++
	if output.openErr != nil {
		return nil, output.openErr
	}
	return output.player, nil
}

func newTestNotifier(output Output, enabled bool) (*Notifier, *recordingFlasher, *bytes.Buffer) {
	flasher := &recordingFlasher{}
	var logs bytes.Buffer
	notifier := New(Config{
		Flasher:    flasher,
		Output:     output,
		Preference: PreferenceFunc(func() bool { return enabled }),
		Logger:     log.New(&logs, "", 0),
	})
	return notifier, flasher, &logs
}

func TestNotifyFlashesAndPlays(t *testing.T) {
	output := &fakeOutput{player: &fakePlayer{}}
	notifier, flasher, logs := newTestNotifier(output, true)

	notifier.Notify(context.Background())

	require.Equal(t, 1, flasher.count())
	assert.Equal(t, 500*time.Millisecond, flasher.durations[0])
	require.Len(t, output.player.played, 1)
	assert.Equal(t, 3, output.player.played[0].Pulses())
	assert.Equal(t, 1, output.player.closed)
	assert.Empty(t, logs.String())
}

func TestNotifyDisabledNeverOpensOutput(t *testing.T) {
	output := &fakeOutput{player: &fakePlayer{}}
	notifier, flasher, _ := newTestNotifier(output, false)

	notifier.Notify(context.Background())

	assert.Equal(t, 1, flasher.count())
	assert.Zero(t, output.opened)
}

func TestAlertOpenFailureIsLogged(t *testing.T) {
	output := &fakeOutput{openErr: errors.New("no device")}
	notifier, flasher, logs := newTestNotifier(output, true)

	notifier.Notify(context.Background())

	assert.Equal(t, 1, flasher.count())
	assert.Contains(t, logs.String(), "open audio output: no device")
}

func TestAlertReleasesOutputOnPlayFailure(t *testing.T) {
	output := &fakeOutput{player: &fakePlayer{playErr: errors.New("underrun")}}
	notifier, _, logs := newTestNotifier(output, true)

	notifier.Alert(context.Background(), true)

	assert.Equal(t, 1, output.player.closed)
	assert.Contains(t, logs.String(), "play pattern: underrun")
}

func TestAlertRecoversFromPlayerPanic(t *testing.T) {
	output := &fakeOutput{player: &fakePlayer{panics: true}}
	notifier, _, logs := newTestNotifier(output, true)

	assert.NotPanics(t, func() {
		notifier.Alert(context.Background(), true)
	})
	assert.Equal(t, 1, output.player.closed)
	assert.Contains(t, logs.String(), "panicked")
}

func TestNotifyWithoutCollaborators(t *testing.T) {
	notifier := New(Config{})
	assert.NotPanics(t, func() {
		notifier.Notify(context.Background())
	})
}

func TestCountdownCompleteRunsAsynchronously(t *testing.T) {
	output := &fakeOutput{player: &fakePlayer{}}
	notifier, flasher, _ := newTestNotifier(output, false)

	notifier.CountdownComplete()

	assert.Eventually(t, func() bool {
		return flasher.count() == 1
	}, time.Second, 5*time.Millisecond)
}

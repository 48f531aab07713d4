package timerwindow

import (
	"image/color"
	"time"

	"countdown/internal/core/model"
	"countdown/internal/core/timer"
	"countdown/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	labelCountUp   = "Count up"
	labelCountDown = "Count down"
	defaultInput   = "00:05:00"
)

var flashColor = color.NRGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}

// Engine is the part of the timer engine the view drives.
type Engine interface {
	SetMode(mode timer.Mode) bool
	SetDuration(text string) bool
	Start()
	TogglePause()
	Reset()
	Snapshot() timer.Snapshot
}

// Callbacks defines view actions handled outside the engine.
type Callbacks struct {
	OnAlertToggle func(enabled bool)
}

// View is the main timer panel.
type View struct {
	engine      Engine
	callbacks   Callbacks
	content     fyne.CanvasObject
	display     *canvas.Text
	entry       *durationEntry
	mode        *widget.RadioGroup
	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	alertCheck  *widget.Check
	controls    *fyne.Container
	flash       *animation.Flash
	state       timer.State
}

// New builds the view around engine. alertEnabled is the persisted toggle.
func New(engine Engine, alertEnabled bool, callbacks Callbacks) *View {
	view := &View{
		engine:    engine,
		callbacks: callbacks,
		state:     timer.StateIdle,
	}

	view.display = canvas.NewText(model.FormatElapsed(0), theme.Color(theme.ColorNameForeground))
	view.display.Alignment = fyne.TextAlignCenter
	view.display.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.display.TextSize = 64

	view.entry = newDurationEntry(view.handleDuration)
	view.entry.SetText(defaultInput)

	view.mode = widget.NewRadioGroup([]string{labelCountUp, labelCountDown}, nil)
	view.mode.Horizontal = true
	view.mode.Required = true
	view.mode.SetSelected(modeLabel(engine.Snapshot().Mode))
	view.mode.OnChanged = view.handleMode

	view.startButton = widget.NewButton("Start", engine.Start)
	view.pauseButton = widget.NewButton("Pause", engine.TogglePause)
	view.resetButton = widget.NewButton("Reset", engine.Reset)

	view.alertCheck = widget.NewCheck("Sound alert", nil)
	view.alertCheck.SetChecked(alertEnabled)
	view.alertCheck.OnChanged = func(enabled bool) {
		if view.callbacks.OnAlertToggle != nil {
			view.callbacks.OnAlertToggle(enabled)
		}
	}

	view.flash = animation.NewFlash(func(on bool) {
		fyne.Do(func() {
			view.setHighlight(on)
		})
	})

	buttons := container.NewGridWithColumns(3, view.startButton, view.pauseButton, view.resetButton)
	view.controls = container.NewVBox(
		widget.NewLabelWithStyle("Duration", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		view.entry,
		view.mode,
		view.alertCheck,
		layout.NewSpacer(),
	)
	view.content = container.NewBorder(nil, view.controls, nil, nil,
		container.NewVBox(layout.NewSpacer(), view.display, buttons, layout.NewSpacer()))

	view.handleDuration(view.entry.Text)
	view.Render(eventFromSnapshot(engine.Snapshot()))
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// State returns the last rendered run state.
func (view *View) State() timer.State {
	return view.state
}

// Flash highlights the display for duration. Safe from any goroutine.
func (view *View) Flash(duration time.Duration) {
	view.flash.Flash(duration)
}

// Render applies an engine event. It must run on the UI thread.
func (view *View) Render(event timer.Event) {
	view.display.Text = event.Display
	view.display.Refresh()
	view.state = event.State

	switch event.State {
	case timer.StateRunning:
		view.startButton.SetText("Running")
		view.startButton.Disable()
		view.pauseButton.SetText("Pause")
		view.pauseButton.Enable()
		view.controls.Hide()
	case timer.StatePaused:
		view.startButton.SetText("Start")
		view.startButton.Disable()
		view.pauseButton.SetText("Resume")
		view.pauseButton.Enable()
		view.controls.Hide()
	default:
		view.startButton.SetText("Start")
		view.startButton.Enable()
		view.pauseButton.SetText("Pause")
		view.pauseButton.Disable()
		view.controls.Show()
	}

	if label := modeLabel(event.Mode); label != view.mode.Selected {
		view.mode.SetSelected(label)
	}
}

func (view *View) handleDuration(text string) {
	view.engine.SetDuration(text)
}

func (view *View) handleMode(label string) {
	mode := timer.ModeCountDown
	if label == labelCountUp {
		mode = timer.ModeCountUp
	}
	if mode == view.engine.Snapshot().Mode {
		return
	}
	if !view.engine.SetMode(mode) {
		current := modeLabel(view.engine.Snapshot().Mode)
		if current != label {
			view.mode.SetSelected(current)
		}
	}
}

func (view *View) setHighlight(on bool) {
	if on {
		view.display.Color = flashColor
	} else {
		view.display.Color = theme.Color(theme.ColorNameForeground)
	}
	view.display.Refresh()
}

func modeLabel(mode timer.Mode) string {
	if mode == timer.ModeCountUp {
		return labelCountUp
	}
	return labelCountDown
}

func eventFromSnapshot(snapshot timer.Snapshot) timer.Event {
	return timer.Event{
		Type:    timer.EventDisplay,
		Mode:    snapshot.Mode,
		State:   snapshot.State,
		Seconds: snapshot.Seconds,
		Display: model.FormatElapsed(snapshot.Seconds),
		At:      time.Now(),
	}
}

package main

import (
	"log"
	"time"

	"countdown/internal/core/alert"
	"countdown/internal/core/model"
	"countdown/internal/core/timer"
	"countdown/internal/platform"
	"countdown/internal/platform/audio"
	"countdown/internal/storage"
	"countdown/internal/ui/chrome"
	"countdown/internal/ui/timerwindow"
	"countdown/internal/ui/tray"
	"countdown/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Countdown"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings := openSettings()
	timing := model.DefaultTiming()

	fyneApp := app.NewWithID("com.countdown.app")
	activeIcon := resources.MustIcon("countdown.svg")
	pausedIcon := resources.MustIcon("countdown_paused.svg")
	fyneApp.SetIcon(activeIcon)

	mainWindow := fyneApp.NewWindow(appName)
	mainWindow.SetMaster()

	var view *timerwindow.View
	notifier := alert.New(alert.Config{
		Flasher: alert.FlasherFunc(func(duration time.Duration) {
			view.Flash(duration)
		}),
		Output:        audio.NewSpeaker(audio.DefaultConfig()),
		Preference:    settings,
		FlashDuration: timing.FlashDuration,
		Logger:        log.Default(),
	})

	engine := timer.New(timer.Config{TickInterval: timing.TickInterval}, notifier)
	defer engine.Close()

	view = timerwindow.New(engine, settings.AlertEnabled(), timerwindow.Callbacks{
		OnAlertToggle: func(enabled bool) {
			if err := settings.SetBool(storage.KeyAlertEnabled, enabled); err != nil {
				log.Printf("save settings: %v", err)
			}
		},
	})
	mainWindow.SetContent(view.Content())

	windowControl := chrome.NewFyneWindow(fyneApp, mainWindow)
	chromeConfig := model.DefaultChromeConfig()
	chromeController := chrome.NewController(chromeConfig, windowControl, fyne.Do, log.Default())

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				current := windowControl.Current()
				current.Show()
				current.RequestFocus()
			},
			OnStart:       engine.Start,
			OnTogglePause: engine.TogglePause,
			OnReset:       engine.Reset,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(activeIcon)
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			if event.Type != timer.EventDisplay {
				continue
			}
			fyne.Do(func() {
				view.Render(event)
				if trayManager != nil {
					trayManager.Update(event)
					if event.State == timer.StatePaused {
						desktopApp.SetSystemTrayIcon(pausedIcon)
					} else {
						desktopApp.SetSystemTrayIcon(activeIcon)
					}
				}
			})
			chromeController.Apply(event.State)
		}
	}()

	normal := chromeConfig.Normal.Size
	mainWindow.Resize(fyne.NewSize(float32(normal.Width), float32(normal.Height)))
	mainWindow.CenterOnScreen()
	mainWindow.ShowAndRun()
}

func openSettings() *storage.Settings {
	path, err := storage.DefaultPath(appName)
	if err != nil {
		log.Printf("settings path: %v", err)
		path = "settings.yaml"
	}
	settings, err := storage.OpenSettings(path)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	return settings
}

package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"countdown/internal/platform"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// KeyAlertEnabled stores whether the completion beep is played.
const KeyAlertEnabled = "notification_enabled"

type yamlSettings struct {
	Flags map[string]bool `yaml:"flags"`
}

// Settings is a small boolean key/value store persisted as YAML.
type Settings struct {
	mu    sync.Mutex
	path  string
	flags map[string]bool
}

// DefaultPath returns <user config dir>/<appName>/settings.yaml.
func DefaultPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// OpenSettings reads the settings file at path. A missing file yields an empty
// store. On a parse error the store is still usable and starts empty.
func OpenSettings(path string) (*Settings, error) {
	settings := &Settings{path: path, flags: map[string]bool{}}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}
	for key, value := range fileData.Flags {
		settings.flags[key] = value
	}
	return settings, nil
}

// GetBool returns the stored value and whether the key was present.
func (settings *Settings) GetBool(key string) (bool, bool) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	value, ok := settings.flags[key]
	return value, ok
}

// BoolOr returns the stored value or fallback when the key is absent.
func (settings *Settings) BoolOr(key string, fallback bool) bool {
	if value, ok := settings.GetBool(key); ok {
		return value
	}
	return fallback
}

// SetBool stores value and writes the file.
func (settings *Settings) SetBool(key string, value bool) error {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	settings.flags[key] = value
	return settings.saveLocked()
}

// AlertEnabled reports the persisted alert preference, enabled by default.
func (settings *Settings) AlertEnabled() bool {
	return settings.BoolOr(KeyAlertEnabled, true)
}

// Path returns the backing file location.
func (settings *Settings) Path() string {
	return settings.path
}

func (settings *Settings) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(settings.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{Flags: make(map[string]bool, len(settings.flags))}
	for key, value := range settings.flags {
		fileData.Flags[key] = value
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(settings.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/poetics/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64   `json:"sfxVolume"`
	Muted     bool      `json:"muted"`
	LastTab   cfg.TabID `json:"lastTab"`
}

// DefaultSettings is used when nothing was saved yet
func DefaultSettings() SavedSettings {
	return SavedSettings{
		SFXVolume: cfg.Audio.DefaultSFXVol,
		LastTab:   cfg.Lab.DefaultTab,
	}
}

// EffectiveVolume is the volume cues should play at
func (s SavedSettings) EffectiveVolume() float64 {
	if s.Muted {
		return 0
	}
	return s.SFXVolume
}

// SettingsStore persists settings through gdata. A nil store or one opened
// without a backing manager silently keeps everything in memory.
type SettingsStore struct {
	manager *gdata.Manager
}

// OpenSettingsStore opens the storage namespace for appName
func OpenSettingsStore(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &SettingsStore{}, fmt.Errorf("open settings storage: %w", err)
	}
	return &SettingsStore{manager: m}, nil
}

// Load returns the saved settings, or the defaults if none were saved
func (s *SettingsStore) Load() (SavedSettings, error) {
	settings := DefaultSettings()
	if s == nil || s.manager == nil || !s.manager.ItemExists(settingsKey) {
		return settings, nil
	}

	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse saved settings: %w", err)
	}
	if settings.LastTab < 0 || settings.LastTab >= cfg.TabCount {
		settings.LastTab = cfg.Lab.DefaultTab
	}
	return settings, nil
}

// Save writes the settings to disk
func (s *SettingsStore) Save(settings SavedSettings) error {
	if s == nil || s.manager == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveQuietly saves and logs a failure instead of returning it.
// Used from UI callbacks where there is nobody to hand the error to.
func (s *SettingsStore) SaveQuietly(settings SavedSettings) {
	if err := s.Save(settings); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// NextVolume cycles through the configured volume steps
func NextVolume(current float64) float64 {
	steps := cfg.Lab.VolumeSteps
	for i, v := range steps {
		if v > current+1e-9 {
			return steps[i]
		}
	}
	return steps[0]
}

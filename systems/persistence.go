package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ScaleStep  int  `json:"scaleStep"`
	Debug      bool `json:"debug"`
	Fullscreen bool `json:"fullscreen"`
	Muted      bool `json:"muted"`

	SFXVolume float64 `json:"sfxVolume,omitempty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// startupSettings is picked up by the first scene that creates a settings
// entity
var startupSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "marquee",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the toggles held by the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		ScaleStep:  s.ScaleStep,
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
		Muted:      s.Muted,
		SFXVolume:  s.SFXVolume,
	})
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during initial game startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	saved.ScaleStep = clampStep(saved.ScaleStep)
	if saved.SFXVolume <= 0 || saved.SFXVolume > 1 {
		saved.SFXVolume = cfg.Audio.DefaultSFXVol
	}
	startupSettings = saved

	ebiten.SetFullscreen(saved.Fullscreen)
	SetSFXVolume(saved.SFXVolume)
}

// defaultSettings returns the saved settings if any were loaded, otherwise
// the config defaults
func defaultSettings() components.SettingsData {
	if startupSettings != nil {
		return components.SettingsData{
			Debug:      startupSettings.Debug,
			Fullscreen: startupSettings.Fullscreen,
			Muted:      startupSettings.Muted,
			ScaleStep:  startupSettings.ScaleStep,
			SFXVolume:  startupSettings.SFXVolume,
		}
	}
	return components.SettingsData{
		Debug:     cfg.Debug.ShowOverlay,
		ScaleStep: cfg.Clock.DefaultStep,
		SFXVolume: GetSFXVolume(),
	}
}

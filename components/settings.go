package components

import "github.com/yohamta/donburi"

// SettingsData stores the user-facing toggles that survive restarts
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Muted      bool
	ScaleStep  int
	SFXVolume  float64
	Dirty      bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()

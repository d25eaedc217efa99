package systems

import (
	"log"
	"os"

	"github.com/automoto/marquee/assets/animations"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClockControls maps title screen actions onto the timeline and the
// persisted settings. Must run after UpdateInput and before UpdateClock.
func UpdateClockControls(ecs *ecs.ECS) {
	entry, ok := components.Timeline.First(ecs.World)
	if !ok {
		return
	}
	tl := components.Timeline.Get(entry)
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if input.Triggered[cfg.ActionSpeedUp] {
		changeScaleStep(tl, settings, 1)
	}
	if input.Triggered[cfg.ActionSlowDown] {
		changeScaleStep(tl, settings, -1)
	}
	if input.Triggered[cfg.ActionFreeze] {
		tl.Frozen = !tl.Frozen
	}
	if input.Triggered[cfg.ActionReroll] {
		Reroll(tl)
		PlaySFX(ecs, cfg.SoundReroll)
	}
	if input.Triggered[cfg.ActionToggleDebug] {
		settings.Debug = !settings.Debug
		settings.Dirty = true
	}
	if input.Triggered[cfg.ActionToggleFullscreen] {
		settings.Fullscreen = !settings.Fullscreen
		settings.Dirty = true
		ebiten.SetFullscreen(settings.Fullscreen)
	}
	if input.Triggered[cfg.ActionToggleMute] {
		settings.Muted = !settings.Muted
		settings.Dirty = true
	}
	if input.Triggered[cfg.ActionCycleVolume] {
		cycleVolume(settings)
		PlaySFX(ecs, cfg.SoundReroll)
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}

	if input.Triggered[cfg.ActionQuit] {
		os.Exit(0)
	}
}

// Reroll restarts the driver at its initial phase with a freshly picked
// group and pushes that state to every follower.
func Reroll(tl *components.TimelineData) {
	driver := tl.Timeline.Driver()
	driver.Reset()
	tl.Timeline.Sync.SyncAll()
	tl.LastPhase = animations.PhaseInitial

	log.Printf("[clock] reroll: group %s", driver.CurrentFrame().Metadata.GroupID)
}

// cycleVolume moves the SFX volume to the next configured step
func cycleVolume(settings *components.SettingsData) {
	next := nextVolumeStep(GetSFXVolume())
	SetSFXVolume(next)
	settings.SFXVolume = next
	settings.Dirty = true
	log.Printf("[audio] sfx volume %.0f%%", next*100)
}

func changeScaleStep(tl *components.TimelineData, settings *components.SettingsData, delta int) {
	next := clampStep(tl.ScaleStep + delta)
	if next == tl.ScaleStep {
		return
	}
	tl.ScaleStep = next
	tl.Frozen = false
	settings.ScaleStep = next
	settings.Dirty = true
}

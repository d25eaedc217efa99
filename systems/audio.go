package systems

import (
	"log"
	"sync"

	"github.com/automoto/marquee/assets"
	"github.com/automoto/marquee/assets/animations"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes every configured tone up front.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("[audio] %v", err)
		}
	}
}

// UpdateAudio turns driver state changes into sound cues and plays anything
// queued this tick. Must run after UpdateClock.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)

	if entry, ok := components.Timeline.First(e.World); ok {
		cue := cueFor(components.Timeline.Get(entry).Timeline.Driver().State())
		audioData.PendingSFX = append(audioData.PendingSFX, cuesBetween(audioData.Last, cue)...)
		audioData.Last = cue
	}

	muted := GetOrCreateSettings(e).Muted
	for _, soundID := range audioData.PendingSFX {
		if !muted {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func cueFor(st animations.State) components.AnimationCue {
	return components.AnimationCue{
		Rapid: st.Phase == animations.PhaseRapid && !st.Paused,
		Flash: st.Phase == animations.PhaseFlash && st.FlashState,
	}
}

// cuesBetween returns the sounds for rising edges from prev to cur
func cuesBetween(prev, cur components.AnimationCue) []cfg.SoundID {
	var out []cfg.SoundID
	if cur.Rapid && !prev.Rapid {
		out = append(out, cfg.SoundRapid)
	}
	if cur.Flash && !prev.Flash {
		out = append(out, cfg.SoundFlash)
	}
	return out
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	initGlobalAudio()

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Printf("[audio] %v", err)
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// nextVolumeStep returns the first configured step above cur, wrapping to
// the quietest step
func nextVolumeStep(cur float64) float64 {
	steps := cfg.Audio.VolumeSteps
	for _, v := range steps {
		if v > cur+1e-9 {
			return v
		}
	}
	return steps[0]
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

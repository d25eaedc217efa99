package components

import (
	cfg "github.com/automoto/marquee/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for the scene (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
	Last       AnimationCue // driver state seen on the previous tick
}

// AnimationCue is the slice of driver state that triggers sounds
type AnimationCue struct {
	Rapid bool
	Flash bool
}

var Audio = donburi.NewComponentType[AudioData]()

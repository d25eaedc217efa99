package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Timeline cues
	SoundFlash
	SoundRapid
	// UI sounds
	SoundReroll
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	VolumeSteps   []float64 // ascending; ActionCycleVolume wraps past the last
}

// Tone is a short synthesized square wave with a linear fade out
type Tone struct {
	Freq    float64 // Hz
	Seconds float64
	Volume  float64 // 0..1 before the SFX volume is applied
}

// SoundConfig maps sound IDs to the tones they synthesize
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
		VolumeSteps:   []float64{0.25, 0.5, 0.75, 1},
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundFlash:  {Freq: 880, Seconds: 0.06, Volume: 0.35},
			SoundRapid:  {Freq: 440, Seconds: 0.12, Volume: 0.5},
			SoundReroll: {Freq: 660, Seconds: 0.2, Volume: 0.6},
		},
	}
}

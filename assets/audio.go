package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/marquee/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects and caches their PCM bytes
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a
// player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for the sound each time so overlapping plays
// do not cut each other off.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SynthesizeTone renders tone as 16-bit little-endian stereo PCM, the format
// audio.Context players expect.
func SynthesizeTone(tone cfg.Tone, sampleRate int) []byte {
	n := int(tone.Seconds * float64(sampleRate))
	if n <= 0 || tone.Freq <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	period := float64(sampleRate) / tone.Freq
	for i := 0; i < n; i++ {
		v := tone.Volume
		if math.Mod(float64(i), period) >= period/2 {
			v = -v
		}
		v *= 1 - float64(i)/float64(n)

		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

package animations

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// Phase is a stage of an animation cycle.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseRapid
	PhaseFlash
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "Initial"
	case PhaseRapid:
		return "Rapid"
	case PhaseFlash:
		return "Flash"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) valid() bool {
	return p >= PhaseInitial && p <= PhaseFlash
}

// PausePhase names the phase after which an instance holds still for
// PauseDurationMs. The empty value disables pausing.
type PausePhase string

const (
	PauseNone    PausePhase = ""
	PauseInitial PausePhase = "initial"
	PauseRapid   PausePhase = "rapid"
)

func (p PausePhase) pausesAfter(phase Phase) bool {
	switch p {
	case PauseInitial:
		return phase == PhaseInitial
	case PauseRapid:
		return phase == PhaseRapid
	}
	return false
}

var (
	ErrNoFrameKeys       = errors.New("animations: no frame keys")
	ErrInvalidFrameKey   = errors.New("animations: invalid frame key")
	ErrInvalidSpeed      = errors.New("animations: speed must be positive")
	ErrInvalidCycles     = errors.New("animations: invalid cycle or frame count")
	ErrInvalidDuration   = errors.New("animations: duration must not be negative")
	ErrInvalidPausePhase = errors.New("animations: invalid pause phase")
)

// Params configures an Instance. It is copied on construction and never
// changed afterwards.
type Params struct {
	FrameKeys []string `yaml:"frameKeys"`

	InitialSpeedMs float64 `yaml:"initialSpeedMs"`
	RapidSpeedMs   float64 `yaml:"rapidSpeedMs"`
	FlashSpeedMs   float64 `yaml:"flashSpeedMs"`

	InitialCycles int `yaml:"initialCycles"`
	RapidFrames   int `yaml:"rapidFrames"` // 0 skips the Rapid phase

	FlashDurationMs float64    `yaml:"flashDurationMs"`
	PauseDurationMs float64    `yaml:"pauseDurationMs"`
	PausePhase      PausePhase `yaml:"pausePhase"`

	SpriteSize image.Point `yaml:"spriteSize"`
	SheetSize  image.Point `yaml:"sheetSize"`
}

// HasRapid reports whether the Rapid phase is part of the cycle.
func (p Params) HasRapid() bool {
	return p.RapidFrames > 0
}

// Validate reports configuration mistakes. Instances built from invalid
// params still run, but config loaders should reject them.
func (p Params) Validate() error {
	if len(p.FrameKeys) == 0 {
		return ErrNoFrameKeys
	}
	seen := make(map[string]bool, len(p.FrameKeys))
	for _, key := range p.FrameKeys {
		if key == "" || strings.HasSuffix(key, OffsetSuffix) {
			return fmt.Errorf("%w: %q", ErrInvalidFrameKey, key)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate %q", ErrInvalidFrameKey, key)
		}
		seen[key] = true
	}

	if p.InitialSpeedMs <= 0 {
		return fmt.Errorf("%w: initialSpeedMs=%v", ErrInvalidSpeed, p.InitialSpeedMs)
	}
	if p.FlashSpeedMs <= 0 {
		return fmt.Errorf("%w: flashSpeedMs=%v", ErrInvalidSpeed, p.FlashSpeedMs)
	}
	if p.HasRapid() && p.RapidSpeedMs <= 0 {
		return fmt.Errorf("%w: rapidSpeedMs=%v", ErrInvalidSpeed, p.RapidSpeedMs)
	}

	if p.InitialCycles < 1 {
		return fmt.Errorf("%w: initialCycles=%d", ErrInvalidCycles, p.InitialCycles)
	}
	if p.RapidFrames < 0 {
		return fmt.Errorf("%w: rapidFrames=%d", ErrInvalidCycles, p.RapidFrames)
	}

	if p.FlashDurationMs < 0 {
		return fmt.Errorf("%w: flashDurationMs=%v", ErrInvalidDuration, p.FlashDurationMs)
	}
	if p.PauseDurationMs < 0 {
		return fmt.Errorf("%w: pauseDurationMs=%v", ErrInvalidDuration, p.PauseDurationMs)
	}

	switch p.PausePhase {
	case PauseNone, PauseInitial:
	case PauseRapid:
		if !p.HasRapid() {
			return fmt.Errorf("%w: %q without a rapid phase", ErrInvalidPausePhase, p.PausePhase)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPausePhase, p.PausePhase)
	}
	return nil
}

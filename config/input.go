package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical title screen action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionSpeedUp
	ActionSlowDown
	ActionFreeze
	ActionReroll
	ActionToggleDebug
	ActionToggleFullscreen
	ActionToggleMute
	ActionCycleVolume
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionSpeedUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyEqual},
				// LB / L1
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionSlowDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyMinus},
				// LT / L2
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionFreeze: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionReroll: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3, ebiten.KeyD},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11, ebiten.KeyF},
			},
			ActionToggleMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionCycleVolume: {
				Keys: []ebiten.Key{ebiten.KeyV},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}

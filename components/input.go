package components

import (
	cfg "github.com/automoto/marquee/config"
	"github.com/yohamta/donburi"
)

// InputMethod selects which button labels the title hint shows
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// InputData holds the title actions that fired this tick. Actions are edge
// triggered; holding a key fires once.
type InputData struct {
	Triggered       [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

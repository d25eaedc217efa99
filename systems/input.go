package systems

import (
	"strings"

	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// playStationNames are lowercase gamepad name fragments that get PlayStation
// labels in the hint. Any other standard layout pad is shown Xbox labels.
var playStationNames = []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"}

var (
	padIDs       []ebiten.GamepadID
	connectedIDs []ebiten.GamepadID
	padMethods   = make(map[ebiten.GamepadID]components.InputMethod)
)

// UpdateInput records which title actions fired this tick and the device
// that fired them. Must run before UpdateClockControls.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Triggered = [cfg.ActionCount]bool{}

	// a reconnected id may belong to a different controller
	connectedIDs = inpututil.AppendJustConnectedGamepadIDs(connectedIDs[:0])
	for _, id := range connectedIDs {
		delete(padMethods, id)
	}
	padIDs = ebiten.AppendGamepadIDs(padIDs[:0])

	for action, binding := range cfg.Input.Bindings {
		if method, ok := triggeredBy(binding); ok {
			input.Triggered[action] = true
			input.LastInputMethod = method
		}
	}
}

func triggeredBy(binding cfg.InputBinding) (components.InputMethod, bool) {
	for _, id := range padIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return padMethod(id), true
			}
		}
	}
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return components.InputKeyboard, true
		}
	}
	return components.InputKeyboard, false
}

func padMethod(id ebiten.GamepadID) components.InputMethod {
	if m, ok := padMethods[id]; ok {
		return m
	}
	m := methodForPadName(ebiten.GamepadName(id))
	padMethods[id] = m
	return m
}

func methodForPadName(name string) components.InputMethod {
	name = strings.ToLower(name)
	for _, frag := range playStationNames {
		if strings.Contains(name, frag) {
			return components.InputPlayStation
		}
	}
	return components.InputXbox
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// Package animset loads animation definitions and wires them into a driver
// and its followers. It is shared by the game and the headless trace tool and
// has no dependencies on ebitengine or donburi.
package animset

import "github.com/automoto/marquee/assets/animations"

// Def is one named animation: its timing params, its coordinate groups and,
// for followers, the name of the driver it mirrors.
type Def struct {
	Follows string             `yaml:"follows"`
	Params  animations.Params  `yaml:"params"`
	Groups  []animations.Group `yaml:"groups"`
}

// Set is a decoded animation file.
type Set struct {
	Driver     string         `yaml:"driver"`
	Animations map[string]Def `yaml:"animations"`
}

// Timeline is a built Set: a synchronizer with every instance reachable by
// name.
type Timeline struct {
	Sync      *animations.Synchronizer
	Instances map[string]*animations.Instance

	standalone []*animations.Instance
}

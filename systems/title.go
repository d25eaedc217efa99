package systems

import (
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawTitle fills the background and draws the control hint. The logo itself
// is drawn by DrawAnimated.
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen,
		0, 0,
		float32(width), float32(height),
		cfg.Title.BackgroundColor,
		false,
	)

	input := getOrCreateInput(e)
	hint := getTitleHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.Title.HintY), cfg.Title.HintColor)
}

// getTitleHint returns the control hint for the last used input method
func getTitleHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "L1/L2: Speed   Options: Freeze   Cross: Reroll   Share: Debug"
	case components.InputXbox:
		return "LB/LT: Speed   Menu: Freeze   A: Reroll   View: Debug"
	default:
		return "Up/Down: Speed   Space: Freeze   Enter: Reroll   D: Debug   M: Mute   V: Volume"
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

package systems

import (
	"fmt"

	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/fonts"
	"github.com/automoto/marquee/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD labels the coin icon with the completed cycle count and the star
// rating of the logo's current group. The icon is drawn by DrawAnimated.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	iconEntry, ok := tags.HUDIcon.First(ecs.World)
	if !ok {
		return
	}
	tlEntry, ok := components.Timeline.First(ecs.World)
	if !ok {
		return
	}
	tl := components.Timeline.Get(tlEntry)
	icon := components.Sprite.Get(iconEntry)
	frame := components.Animation.Get(iconEntry).Frame()

	face := fonts.Bold.Get()
	iconW := float64(frame.SpriteSize.X) * icon.Scale
	iconH := float64(frame.SpriteSize.Y) * icon.Scale
	x := int(icon.X + iconW + cfg.HUD.LabelGap)
	baseline := int(icon.Y + iconH)

	text.Draw(screen, fmt.Sprintf(cfg.HUD.CoinLabel, tl.Cycles), face, x, baseline, cfg.HUD.TextColor)

	stars := tl.Timeline.Driver().CurrentFrame().Metadata.Stars
	label := fmt.Sprintf(cfg.HUD.StarsLabel, stars)
	width := screen.Bounds().Dx()
	labelX := width - int(cfg.HUD.Margin) - text.BoundString(face, label).Dx()
	text.Draw(screen, label, face, labelX, baseline, cfg.HUD.StarColor)
}

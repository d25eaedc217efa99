package systems

import (
	"image"

	"github.com/automoto/marquee/assets"
	"github.com/automoto/marquee/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawAnimated renders every entity with an Animation and a Sprite using the
// frame its instance currently reports.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	tlEntry, ok := components.Timeline.First(ecs.World)
	if !ok {
		return
	}
	sheet := assets.GetSheet(components.Timeline.Get(tlEntry).Set)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Sprite) {
			return
		}
		frame := components.Animation.Get(e).Frame()
		sprite := components.Sprite.Get(e)
		img := assets.GetFrame(sheet, frame.Rect())

		geo := spriteGeoM(sprite, frame.SpriteSize)
		if frame.Effects.Flash && e.HasComponent(components.Flash) {
			drawFlashing(screen, img, geo, components.Flash.Get(e))
			return
		}

		drawOp.GeoM = geo
		drawOp.ColorScale.Reset()
		screen.DrawImage(img, drawOp)
	})
}

// spriteGeoM scales the frame and places it at the sprite's position
func spriteGeoM(sprite *components.SpriteData, size image.Point) ebiten.GeoM {
	var geo ebiten.GeoM
	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}
	geo.Scale(scale, scale)

	x := sprite.X
	if sprite.Centered {
		x -= float64(size.X) * scale / 2
	}
	geo.Translate(x, sprite.Y+sprite.OffsetY)
	return geo
}

// drawFlashing blends the frame toward the flash colour with the flash
// shader, falling back to a colour scale when shaders are unavailable
func drawFlashing(screen, img *ebiten.Image, geo ebiten.GeoM, flash *components.FlashData) {
	if assets.FlashShader == nil {
		drawOp.GeoM = geo
		drawOp.ColorScale.Reset()
		boost := 1 + flash.Amount
		drawOp.ColorScale.Scale(boost, boost, boost, 1)
		screen.DrawImage(img, drawOp)
		return
	}

	c := flash.Color
	shaderOp.GeoM = geo
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"FlashColor": []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1},
		"Amount":     flash.Amount,
	}
	b := img.Bounds()
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.FlashShader, shaderOp)
}

package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData is the colour a sprite blends toward while its animation's
// flash effect is lit
type FlashData struct {
	Color  color.RGBA
	Amount float32 // 0..1 blend toward Color
}

var Flash = donburi.NewComponentType[FlashData]()

// TweenData drives SpriteData.OffsetY. Intro plays once, then Loop repeats.
type TweenData struct {
	Intro *gween.Tween
	Loop  *gween.Sequence
	Done  bool // intro finished
}

var Tween = donburi.NewComponentType[TweenData]()

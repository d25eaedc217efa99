package components

import "github.com/yohamta/donburi"

// SpriteData places an animated sprite on screen
type SpriteData struct {
	X, Y     float64 // top-left in screen pixels
	Scale    float64
	OffsetY  float64 // added to Y, driven by tweens
	Centered bool    // X is the horizontal centre instead of the left edge
}

var Sprite = donburi.NewComponentType[SpriteData]()

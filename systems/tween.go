package systems

import (
	"github.com/automoto/marquee/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens plays each sprite's intro tween once, then loops its idle
// sequence. Tweens run on game ticks, not the scaled animation clock, so
// freezing the clock leaves the logo floating.
func UpdateTweens(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.TPS()))

	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		advanceTween(components.Tween.Get(e), components.Sprite.Get(e), dt)
	})
}

func advanceTween(tw *components.TweenData, sprite *components.SpriteData, dt float32) {
	if !tw.Done && tw.Intro != nil {
		y, finished := tw.Intro.Update(dt)
		sprite.OffsetY = float64(y)
		tw.Done = finished
		return
	}

	if tw.Loop == nil {
		return
	}
	y, _, seqDone := tw.Loop.Update(dt)
	sprite.OffsetY = float64(y)
	if seqDone {
		tw.Loop.Reset()
	}
}

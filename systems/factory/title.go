package factory

import (
	"fmt"

	"github.com/automoto/marquee/archetypes"
	"github.com/automoto/marquee/assets/animations"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLogo spawns the title logo bound to the named animation. It drops in
// from above the screen and then bobs in place.
func CreateLogo(ecs *ecs.ECS, timeline *components.TimelineData, name string) *donburi.Entry {
	inst := mustInstance(timeline, name)

	logo := archetypes.Logo.Spawn(ecs)
	components.Animation.SetValue(logo, components.AnimationData{Name: name, Instance: inst})
	components.Sprite.SetValue(logo, components.SpriteData{
		X:        float64(cfg.C.Width) / 2,
		Y:        cfg.Title.LogoY,
		Scale:    1,
		OffsetY:  -cfg.Title.DropHeight,
		Centered: true,
	})
	components.Flash.SetValue(logo, components.FlashData{
		Color:  cfg.Title.FlashColor,
		Amount: cfg.Title.FlashAmount,
	})

	bob := float32(cfg.Title.BobHeight)
	loop := gween.NewSequence()
	loop.Add(
		gween.New(0, -bob, cfg.Title.BobSeconds, ease.InOutSine),
		gween.New(-bob, 0, cfg.Title.BobSeconds, ease.InOutSine),
	)
	components.Tween.SetValue(logo, components.TweenData{
		Intro: gween.New(float32(-cfg.Title.DropHeight), 0, cfg.Title.DropSeconds, ease.OutBounce),
		Loop:  loop,
	})

	return logo
}

// CreateCoinIcon spawns the HUD coin bound to the named animation, which is
// expected to follow the logo's driver.
func CreateCoinIcon(ecs *ecs.ECS, timeline *components.TimelineData, name string) *donburi.Entry {
	inst := mustInstance(timeline, name)

	icon := archetypes.HUDIcon.Spawn(ecs)
	components.Animation.SetValue(icon, components.AnimationData{Name: name, Instance: inst})
	components.Sprite.SetValue(icon, components.SpriteData{
		X:     cfg.HUD.Margin,
		Y:     cfg.HUD.Margin,
		Scale: cfg.HUD.CoinScale,
	})
	components.Flash.SetValue(icon, components.FlashData{
		Color:  cfg.Title.FlashColor,
		Amount: cfg.Title.FlashAmount,
	})

	return icon
}

func mustInstance(timeline *components.TimelineData, name string) *animations.Instance {
	inst, ok := timeline.Timeline.Instances[name]
	if !ok {
		panic(fmt.Sprintf("No animation named %q in timeline", name))
	}
	return inst
}

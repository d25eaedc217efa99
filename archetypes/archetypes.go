package archetypes

import (
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Logo = newArchetype(
		tags.Logo,
		components.Animation,
		components.Sprite,
		components.Flash,
		components.Tween,
	)
	HUDIcon = newArchetype(
		tags.HUDIcon,
		components.Animation,
		components.Sprite,
		components.Flash,
	)
	Timeline = newArchetype(
		components.Timeline,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

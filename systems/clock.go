package systems

import (
	"github.com/automoto/marquee/assets/animations"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock pushes the wall clock into the scene clock, which fans the
// scaled delta out to every subscribed animation. It also counts completed
// driver cycles for the HUD.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Timeline.First(ecs.World)
	if !ok {
		return
	}
	tl := components.Timeline.Get(entry)

	tl.Clock.SetScale(ScaleFor(tl))
	tl.Clock.Tick(tl.Now())

	phase := tl.Timeline.Driver().State().Phase
	if tl.LastPhase == animations.PhaseFlash && phase == animations.PhaseInitial {
		tl.Cycles++
	}
	tl.LastPhase = phase
}

// ScaleFor returns the multiplier the clock should run at
func ScaleFor(tl *components.TimelineData) float64 {
	if tl.Frozen {
		return 0
	}
	return cfg.Clock.ScaleSteps[clampStep(tl.ScaleStep)]
}

func clampStep(step int) int {
	if step < 0 {
		return 0
	}
	if last := len(cfg.Clock.ScaleSteps) - 1; step > last {
		return last
	}
	return step
}

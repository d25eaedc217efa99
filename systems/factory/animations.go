package factory

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/marquee/archetypes"
	"github.com/automoto/marquee/assets/animations"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/shared/animset"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTimeline builds every animation in set, subscribes them to a fresh
// scene clock and spawns the entity that owns both. now is the wall clock the
// clock system reads each tick.
func CreateTimeline(ecs *ecs.ECS, set *animset.Set, now func() time.Time, scaleStep int) *donburi.Entry {
	tl, err := set.Build(newSource(cfg.Debug.Seed))
	if err != nil {
		// Sets are validated on load, so this is a configuration error.
		panic(fmt.Sprintf("could not build animation timeline: %v", err))
	}

	clock := animations.NewClock(now(), 1, tl.Update)

	entry := archetypes.Timeline.Spawn(ecs)
	components.Timeline.SetValue(entry, components.TimelineData{
		Clock:     clock,
		Timeline:  tl,
		Set:       set,
		Now:       now,
		ScaleStep: scaleStep,
		LastPhase: tl.Driver().State().Phase,
	})

	log.Printf("[factory] timeline %q with %d animation(s), group %s",
		set.Driver, len(tl.Instances), tl.Driver().CurrentFrame().Metadata.GroupID)
	return entry
}

func newSource(seed int64) animations.Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

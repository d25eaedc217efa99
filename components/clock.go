package components

import (
	"time"

	"github.com/automoto/marquee/assets/animations"
	"github.com/automoto/marquee/shared/animset"
	"github.com/yohamta/donburi"
)

// TimelineData owns the scene clock and the animations subscribed to it
type TimelineData struct {
	Clock    *animations.Clock
	Timeline *animset.Timeline
	Set      *animset.Set     // definitions the sheet is painted from
	Now      func() time.Time // wall clock, swapped out in tests

	ScaleStep int  // index into config.Clock.ScaleSteps
	Frozen    bool // scale forced to 0 until unfrozen
	Cycles    int  // completed driver cycles
	LastPhase animations.Phase
}

var Timeline = donburi.NewComponentType[TimelineData]()

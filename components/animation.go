package components

import (
	"github.com/automoto/marquee/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData binds an entity to an animation instance. Renderers read
// frames from Instance; only the timeline system advances it.
type AnimationData struct {
	Name     string
	Instance *animations.Instance
}

// Frame returns the instance's current frame.
func (a *AnimationData) Frame() animations.FrameData {
	return a.Instance.CurrentFrame()
}

var Animation = donburi.NewComponentType[AnimationData]()

package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/shared/animset"
	"github.com/automoto/marquee/systems"
	"github.com/automoto/marquee/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene shows the animated logo with a coin counter that mirrors it
type TitleScene struct {
	ecs  *ecs.ECS
	set  *animset.Set
	once sync.Once
}

// NewTitleScene creates a title scene for the given animation set
func NewTitleScene(set *animset.Set) *TitleScene {
	return &TitleScene{set: set}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	settings := systems.GetOrCreateSettings(ts.ecs)
	timelineEntry := factory.CreateTimeline(ts.ecs, ts.set, time.Now, settings.ScaleStep)
	timeline := components.Timeline.Get(timelineEntry)

	// The driver is the logo; the first follower, if any, is the HUD coin.
	factory.CreateLogo(ts.ecs, timeline, ts.set.Driver)
	if followers := ts.set.Followers(); len(followers) > 0 {
		factory.CreateCoinIcon(ts.ecs, timeline, followers[0])
	}

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateClockControls)
	ts.ecs.AddSystem(systems.UpdateClock)
	ts.ecs.AddSystem(systems.UpdateTweens)
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ts.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
}

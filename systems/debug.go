package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/marquee/assets/animations"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	debugPanelX     = 8
	debugPanelY     = 40
	debugLineHeight = 14
	debugPanelWidth = 260
)

// DrawDebug shows the timeline state of every animation when the debug
// overlay is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	tlEntry, ok := components.Timeline.First(ecs.World)
	if !ok {
		return
	}
	tl := components.Timeline.Get(tlEntry)

	lines := DebugLines(tl)
	vector.FillRect(screen,
		debugPanelX-4, debugPanelY-12,
		debugPanelWidth, float32(len(lines)*debugLineHeight+6),
		cfg.BlackOverlay, false)

	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, debugPanelX, debugPanelY+i*debugLineHeight, cfg.White)
	}
}

// DebugLines formats the clock, the driver's groups and per-animation state,
// driver first and marked with '>'
func DebugLines(tl *components.TimelineData) []string {
	scale := fmt.Sprintf("scale %.2fx", ScaleFor(tl))
	if tl.Frozen {
		scale += " (frozen)"
	}
	sync := tl.Timeline.Sync
	lines := []string{
		fmt.Sprintf("%s  cycles %d", scale, tl.Cycles),
		"groups " + strings.Join(sync.Driver().GroupIDs(), " "),
	}

	for _, name := range sync.Names() {
		inst := sync.Instance(name)
		if inst == nil {
			continue
		}
		mark := " "
		if name == sync.DriverName() {
			mark = ">"
		}
		lines = append(lines, mark+formatInstance(name, inst))
	}
	return lines
}

func formatInstance(name string, inst *animations.Instance) string {
	st := inst.State()
	frames := len(inst.Params().FrameKeys)
	group := inst.CurrentFrame().Metadata.GroupID
	line := fmt.Sprintf("%-6s %-7s %2d/%-2d %-8s %s", name, st.Phase, st.FrameIndex, frames, group, inst.FrameKey())
	if st.FlashState {
		line += " *"
	}
	if st.Paused {
		line += " paused"
	}
	return line
}

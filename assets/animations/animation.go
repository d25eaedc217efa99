package animations

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// OffsetChance is the probability that a frame step renders the _offset
// variant of its frame key instead of the base coordinate.
const OffsetChance = 0.2

// timerEpsilon absorbs float drift from scaled deltas so that, for example,
// ten 0.1s ticks reliably cross a 1000ms threshold.
const timerEpsilon = 1e-6

// Source is the randomness an Instance consumes. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Instance is a single sprite's animation state machine. It advances through
// Initial, Rapid and Flash phases, optionally pausing at the end of Initial or
// Rapid, and picks a new coordinate group at the start of every cycle.
//
// An Instance bound to a Synchronizer as a follower ignores Update; its
// control fields are written by the synchronizer only.
type Instance struct {
	params Params
	groups []frameTable
	rng    Source

	current int // index into groups, -1 when there are none

	phase          Phase
	frameIndex     int
	animationTimer float64
	flashTimer     float64
	flashState     bool
	useOffset      bool

	paused     bool
	pauseTimer float64
	lastPhase  Phase

	owner  *Synchronizer // set while bound as a follower
	drives *Synchronizer // set when this instance drives a synchronizer
}

// NewInstance compiles groups against params.FrameKeys and selects the first
// group. A nil rng falls back to a time-seeded source.
//
// NewInstance never fails: an empty group list leaves the instance on the
// default frame, and coordinates missing from a group resolve to the origin.
func NewInstance(params Params, groups []Group, rng Source) *Instance {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	a := &Instance{
		params:  params,
		rng:     rng,
		current: -1,
	}

	if len(groups) == 0 {
		log.Printf("[animations] no groups configured, rendering default frame")
	}
	for _, g := range groups {
		table, missing := compileGroup(g, params.FrameKeys)
		for _, key := range missing {
			log.Printf("[animations] group %q has no coordinate for %q, using origin", g.ID, key)
		}
		a.groups = append(a.groups, table)
	}

	a.restart()
	return a
}

// Update advances the state machine by deltaSeconds of scaled time.
// Non-positive and NaN deltas are ignored so that a frozen clock changes
// nothing.
func (a *Instance) Update(deltaSeconds float64) {
	if !(deltaSeconds > 0) || a.owner != nil {
		return
	}
	a.advance(deltaSeconds * 1000)
}

func (a *Instance) advance(ms float64) {
	if a.paused {
		a.pauseTimer += ms
		if a.pauseTimer+timerEpsilon >= a.params.PauseDurationMs {
			a.endPause()
		}
		return
	}

	a.animationTimer += ms
	stepped := a.animationTimer+timerEpsilon >= a.phaseSpeed()
	if stepped {
		a.animationTimer = 0
	}

	switch a.phase {
	case PhaseInitial:
		if !stepped {
			return
		}
		a.stepFrame()
		if a.frameIndex >= a.initialFrames() {
			a.finishPhase(PhaseInitial)
		}
	case PhaseRapid:
		if !stepped {
			return
		}
		a.stepFrame()
		if a.frameIndex >= a.initialFrames()+a.params.RapidFrames {
			a.finishPhase(PhaseRapid)
		}
	case PhaseFlash:
		a.flashTimer += ms
		if stepped {
			a.flashState = !a.flashState
		}
		if a.flashTimer+timerEpsilon >= a.params.FlashDurationMs {
			a.restart()
		}
	default:
		panic(fmt.Sprintf("animations: unknown phase %d", a.phase))
	}
}

func (a *Instance) stepFrame() {
	a.frameIndex++
	a.rollOffset()
}

func (a *Instance) rollOffset() {
	a.useOffset = a.rng.Float64() < OffsetChance
}

// finishPhase either enters the pause overlay or moves on to the next phase.
func (a *Instance) finishPhase(from Phase) {
	if a.params.PausePhase.pausesAfter(from) {
		a.paused = true
		a.pauseTimer = 0
		a.lastPhase = from
		return
	}
	a.enter(a.nextPhase(from))
}

func (a *Instance) endPause() {
	a.paused = false
	a.pauseTimer = 0
	if a.lastPhase == PhaseFlash {
		a.restart()
		return
	}
	a.enter(a.nextPhase(a.lastPhase))
}

func (a *Instance) nextPhase(from Phase) Phase {
	switch from {
	case PhaseInitial:
		if a.params.HasRapid() {
			return PhaseRapid
		}
		return PhaseFlash
	case PhaseRapid:
		return PhaseFlash
	case PhaseFlash:
		return PhaseInitial
	}
	panic(fmt.Sprintf("animations: unknown phase %d", from))
}

func (a *Instance) enter(p Phase) {
	switch p {
	case PhaseInitial:
		a.restart()
	case PhaseRapid:
		a.phase = PhaseRapid
		a.animationTimer = 0
	case PhaseFlash:
		a.phase = PhaseFlash
		a.animationTimer = 0
		a.flashTimer = 0
		a.flashState = false
	default:
		panic(fmt.Sprintf("animations: unknown phase %d", p))
	}
}

// restart returns to the top of the Initial phase with a freshly picked group.
func (a *Instance) restart() {
	a.phase = PhaseInitial
	a.frameIndex = 0
	a.animationTimer = 0
	a.flashTimer = 0
	a.flashState = false
	a.useOffset = false
	a.paused = false
	a.pauseTimer = 0
	a.pickGroup()
}

func (a *Instance) pickGroup() {
	if len(a.groups) == 0 {
		a.current = -1
		return
	}
	a.current = a.rng.Intn(len(a.groups))
}

// Reset restarts the cycle at Initial and selects a new group.
func (a *Instance) Reset() {
	a.restart()
}

func (a *Instance) phaseSpeed() float64 {
	switch a.phase {
	case PhaseInitial:
		return a.params.InitialSpeedMs
	case PhaseRapid:
		if a.params.RapidSpeedMs <= 0 {
			return a.params.InitialSpeedMs
		}
		return a.params.RapidSpeedMs
	case PhaseFlash:
		return a.params.FlashSpeedMs
	}
	panic(fmt.Sprintf("animations: unknown phase %d", a.phase))
}

func (a *Instance) initialFrames() int {
	cycles := a.params.InitialCycles
	if cycles < 1 {
		cycles = 1
	}
	return len(a.params.FrameKeys) * cycles
}

// frameKey resolves the position in FrameKeys to render and whether the
// _offset variant is used. It returns -1 when no keys are configured.
func (a *Instance) frameKey() (int, bool) {
	n := len(a.params.FrameKeys)
	if n == 0 {
		return -1, false
	}

	switch a.phase {
	case PhaseFlash:
		if a.flashState || n < 2 {
			return 0, false
		}
		return 1, false
	case PhaseInitial, PhaseRapid:
		return a.frameIndex % n, a.useOffset
	}
	panic(fmt.Sprintf("animations: unknown phase %d", a.phase))
}

// FrameKey returns the name of the frame key currently selected, including
// the _offset suffix when the variant is in use.
func (a *Instance) FrameKey() string {
	idx, offset := a.frameKey()
	if idx < 0 {
		return ""
	}
	key := a.params.FrameKeys[idx]
	if offset {
		return key + OffsetSuffix
	}
	return key
}

// CurrentFrame returns the frame to render. It never mutates the instance.
func (a *Instance) CurrentFrame() FrameData {
	if a.current < 0 {
		return a.defaultFrame()
	}

	g := &a.groups[a.current]
	var coords Coord
	if idx, offset := a.frameKey(); idx >= 0 {
		if offset {
			coords = g.offset[idx]
		} else {
			coords = g.base[idx]
		}
	}

	return FrameData{
		Coords:     coords.Point(),
		SpriteSize: a.params.SpriteSize,
		SheetSize:  a.params.SheetSize,
		Effects:    Effects{Flash: a.phase == PhaseFlash && a.flashState},
		Metadata: Metadata{
			GroupID: g.id,
			Phase:   a.phase,
			Stars:   g.stars,
		},
	}
}

func (a *Instance) defaultFrame() FrameData {
	return FrameData{
		SpriteSize: a.params.SpriteSize,
		SheetSize:  a.params.SheetSize,
		Metadata:   Metadata{Phase: PhaseInitial},
	}
}

// State reports the control signals a synchronizer mirrors.
func (a *Instance) State() State {
	return State{
		Phase:      a.phase,
		FlashState: a.flashState,
		FrameIndex: a.frameIndex,
		Paused:     a.paused,
	}
}

// Params returns the configuration the instance was built with.
func (a *Instance) Params() Params {
	return a.params
}

// GroupIDs lists the ids of every configured group in order.
func (a *Instance) GroupIDs() []string {
	ids := make([]string, len(a.groups))
	for i, g := range a.groups {
		ids[i] = g.id
	}
	return ids
}

// ApplyExternalState overwrites the control fields with a driver's values.
// Any timers the instance accumulated on its own are discarded. The group and
// its coordinates are left alone.
func (a *Instance) ApplyExternalState(phase Phase, flashState, paused bool, frameIndex int) {
	if !phase.valid() {
		panic(fmt.Sprintf("animations: unknown phase %d", phase))
	}
	if frameIndex < 0 {
		frameIndex = 0
	}
	if frameIndex != a.frameIndex {
		a.rollOffset()
	}

	a.phase = phase
	a.flashState = flashState
	a.paused = paused
	a.frameIndex = frameIndex
	if paused {
		a.lastPhase = phase
	}

	a.animationTimer = 0
	a.flashTimer = 0
	a.pauseTimer = 0
}

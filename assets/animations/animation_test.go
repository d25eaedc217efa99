package animations

import (
	"errors"
	"image"
	"math"
	"math/rand"
	"testing"
)

// scriptedSource replays fixed values so group and offset selection are
// deterministic.
type scriptedSource struct {
	ints   []int
	floats []float64
	ni, nf int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ni%len(s.ints)]
	s.ni++
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[s.nf%len(s.floats)]
	s.nf++
	return v
}

func abGroups() []Group {
	return []Group{
		{ID: "A", Coords: map[string]Coord{"f": {0, 0}, "s": {0, 88}}},
		{ID: "B", Coords: map[string]Coord{"f": {200, 0}, "s": {200, 88}}},
	}
}

func twoKeyParams() Params {
	return Params{
		FrameKeys:       []string{"f", "s"},
		InitialSpeedMs:  100,
		InitialCycles:   1,
		FlashSpeedMs:    100,
		FlashDurationMs: 200,
		PauseDurationMs: 0,
		SpriteSize:      image.Pt(176, 88),
		SheetSize:       image.Pt(512, 256),
	}
}

type snapshot struct {
	phase                  Phase
	frameIndex             int
	flashState, paused     bool
	animationTimer         float64
	flashTimer, pauseTimer float64
	current                int
}

func snap(a *Instance) snapshot {
	return snapshot{
		phase:          a.phase,
		frameIndex:     a.frameIndex,
		flashState:     a.flashState,
		paused:         a.paused,
		animationTimer: a.animationTimer,
		flashTimer:     a.flashTimer,
		pauseTimer:     a.pauseTimer,
		current:        a.current,
	}
}

func TestUpdateIgnoresNonPositiveDelta(t *testing.T) {
	for _, delta := range []float64{0, -0.001, -1, -1e-12, math.NaN(), math.Inf(-1)} {
		a := NewInstance(twoKeyParams(), abGroups(), rand.New(rand.NewSource(1)))
		a.Update(0.05) // leave a partial timer behind
		a.Update(0.1)
		before := snap(a)

		a.Update(delta)

		if got := snap(a); got != before {
			t.Errorf("Update(%v) changed state: before %+v, after %+v", delta, before, got)
		}
	}
}

func TestUpdateRecoversAfterNaNDelta(t *testing.T) {
	a := NewInstance(twoKeyParams(), abGroups(), rand.New(rand.NewSource(1)))
	a.Update(math.NaN())
	if a.animationTimer != 0 {
		t.Fatalf("NaN delta reached the timer: %v", a.animationTimer)
	}

	moved := false
	for i := 0; i < 10; i++ {
		a.Update(0.1)
		if st := a.State(); st.Phase != PhaseInitial || st.FrameIndex != 0 {
			moved = true
		}
	}
	if !moved {
		t.Fatalf("instance stalled after NaN delta: %+v", a.State())
	}
}

func TestInitialReachesFlashAfterConfiguredCycles(t *testing.T) {
	params := Params{
		FrameKeys:       []string{"f", "s", "t"},
		InitialSpeedMs:  200,
		InitialCycles:   2,
		FlashSpeedMs:    100,
		FlashDurationMs: 1000,
	}
	groups := []Group{{ID: "A", Coords: map[string]Coord{"f": {0, 0}, "s": {0, 88}, "t": {0, 176}}}}
	a := NewInstance(params, groups, rand.New(rand.NewSource(7)))

	for i := 1; i <= 5; i++ {
		a.Update(0.2)
		st := a.State()
		if st.Phase != PhaseInitial {
			t.Fatalf("after %d updates phase = %v, want Initial", i, st.Phase)
		}
		if st.FrameIndex != i {
			t.Fatalf("after %d updates frameIndex = %d, want %d", i, st.FrameIndex, i)
		}
	}

	a.Update(0.2)
	if got := a.State().Phase; got != PhaseFlash {
		t.Fatalf("after 6 updates phase = %v, want Flash", got)
	}
}

func TestFrameIndexNonDecreasingBeforeReset(t *testing.T) {
	params := Params{
		FrameKeys:       []string{"f", "s", "t"},
		InitialSpeedMs:  100,
		RapidSpeedMs:    50,
		RapidFrames:     4,
		InitialCycles:   1,
		FlashSpeedMs:    100,
		FlashDurationMs: 300,
	}
	a := NewInstance(params, abGroups(), rand.New(rand.NewSource(3)))

	prev := a.State()
	sawRapid := false
	for i := 0; i < 400; i++ {
		a.Update(0.03)
		st := a.State()
		if st.Phase == PhaseRapid {
			sawRapid = true
		}
		if st.Phase != PhaseFlash && prev.Phase != PhaseFlash && st.FrameIndex < prev.FrameIndex {
			t.Fatalf("tick %d: frameIndex went from %d to %d in %v", i, prev.FrameIndex, st.FrameIndex, st.Phase)
		}
		prev = st
	}
	if !sawRapid {
		t.Fatal("never entered Rapid")
	}
}

func TestRapidPhaseSequence(t *testing.T) {
	params := twoKeyParams()
	params.RapidFrames = 3
	params.RapidSpeedMs = 50
	params.FlashDurationMs = 1000
	a := NewInstance(params, abGroups(), &scriptedSource{})

	a.Update(0.1)
	a.Update(0.1)
	if st := a.State(); st.Phase != PhaseRapid || st.FrameIndex != 2 {
		t.Fatalf("after initial cycle state = %+v, want Rapid at 2", st)
	}

	// Rapid runs at its own speed.
	a.Update(0.05)
	a.Update(0.05)
	if st := a.State(); st.Phase != PhaseRapid || st.FrameIndex != 4 {
		t.Fatalf("mid rapid state = %+v, want Rapid at 4", st)
	}

	a.Update(0.05)
	if st := a.State(); st.Phase != PhaseFlash {
		t.Fatalf("after rapid frames state = %+v, want Flash", st)
	}
}

func TestFlashTogglesOncePerInterval(t *testing.T) {
	params := twoKeyParams()
	params.FlashSpeedMs = 150
	params.FlashDurationMs = 10000
	a := NewInstance(params, abGroups(), &scriptedSource{})

	a.Update(0.1)
	a.Update(0.1)
	if a.State().Phase != PhaseFlash {
		t.Fatalf("phase = %v, want Flash", a.State().Phase)
	}

	want := false
	for i := 0; i < 10; i++ {
		// Two half intervals make one toggle.
		a.Update(0.075)
		if got := a.State().FlashState; got != want {
			t.Fatalf("interval %d half: flashState = %v, want %v", i, got, want)
		}
		a.Update(0.075)
		want = !want
		if got := a.State().FlashState; got != want {
			t.Fatalf("interval %d: flashState = %v, want %v", i, got, want)
		}
	}
}

func TestFlashFrameKeys(t *testing.T) {
	a := NewInstance(twoKeyParams(), abGroups()[:1], &scriptedSource{})
	a.Update(0.1)
	a.Update(0.1)

	// Flash entry starts dark, showing the second key.
	if got := a.CurrentFrame().Coords; got != image.Pt(0, 88) {
		t.Fatalf("flash off coords = %v, want (0,88)", got)
	}
	a.Update(0.1)
	f := a.CurrentFrame()
	if f.Coords != image.Pt(0, 0) || !f.Effects.Flash {
		t.Fatalf("flash on frame = %+v, want first key with flash effect", f)
	}
}

func TestFlashResetPicksGroup(t *testing.T) {
	ids := map[string]bool{"A": true, "B": true}
	for seed := int64(0); seed < 20; seed++ {
		a := NewInstance(twoKeyParams(), abGroups(), rand.New(rand.NewSource(seed)))
		for i := 0; i < 4; i++ {
			a.Update(0.1)
		}

		st := a.State()
		if st.Phase != PhaseInitial || st.FrameIndex != 0 || st.FlashState {
			t.Fatalf("seed %d: state after flash = %+v, want fresh Initial", seed, st)
		}
		if id := a.CurrentFrame().Metadata.GroupID; !ids[id] {
			t.Fatalf("seed %d: group %q not among configured groups", seed, id)
		}
	}
}

func TestFlashResetUsesInjectedSource(t *testing.T) {
	src := &scriptedSource{ints: []int{0, 1}}
	a := NewInstance(twoKeyParams(), abGroups(), src)
	if id := a.CurrentFrame().Metadata.GroupID; id != "A" {
		t.Fatalf("initial group = %q, want A", id)
	}
	for i := 0; i < 4; i++ {
		a.Update(0.1)
	}
	if id := a.CurrentFrame().Metadata.GroupID; id != "B" {
		t.Fatalf("group after reset = %q, want B", id)
	}
}

func TestEndToEndScenario(t *testing.T) {
	a := NewInstance(twoKeyParams(), abGroups(), rand.New(rand.NewSource(42)))

	first := a.CurrentFrame()
	if first.Metadata.GroupID != "A" && first.Metadata.GroupID != "B" {
		t.Fatalf("unexpected group %q", first.Metadata.GroupID)
	}

	a.Update(0.1)
	if a.State().Phase != PhaseInitial {
		t.Fatalf("after one update phase = %v, want Initial", a.State().Phase)
	}
	a.Update(0.1)
	if a.State().Phase != PhaseFlash {
		t.Fatalf("after two updates phase = %v, want Flash", a.State().Phase)
	}

	a.Update(0.1)
	a.Update(0.1)
	st := a.State()
	if st.Phase != PhaseInitial || st.FrameIndex != 0 || st.FlashState {
		t.Fatalf("after flash duration state = %+v, want reset Initial", st)
	}
	f := a.CurrentFrame()
	if f.Metadata.GroupID != "A" && f.Metadata.GroupID != "B" {
		t.Fatalf("unexpected group %q after reset", f.Metadata.GroupID)
	}
	if f.Metadata.Phase != PhaseInitial {
		t.Fatalf("frame phase = %v, want Initial", f.Metadata.Phase)
	}
}

func TestPauseAfterInitial(t *testing.T) {
	params := twoKeyParams()
	params.PausePhase = PauseInitial
	params.PauseDurationMs = 500
	params.FlashDurationMs = 1000
	a := NewInstance(params, abGroups(), &scriptedSource{})

	a.Update(0.1)
	a.Update(0.1)
	st := a.State()
	if !st.Paused || st.Phase != PhaseInitial || st.FrameIndex != 2 {
		t.Fatalf("state at end of initial = %+v, want paused Initial at 2", st)
	}

	a.Update(0.4)
	if got := a.State(); got != st {
		t.Fatalf("state changed during pause: %+v -> %+v", st, got)
	}

	a.Update(0.1)
	st = a.State()
	if st.Paused || st.Phase != PhaseFlash {
		t.Fatalf("state after pause = %+v, want unpaused Flash", st)
	}
}

func TestPauseAfterRapid(t *testing.T) {
	params := twoKeyParams()
	params.RapidFrames = 2
	params.RapidSpeedMs = 50
	params.PausePhase = PauseRapid
	params.PauseDurationMs = 300
	params.FlashDurationMs = 1000
	a := NewInstance(params, abGroups(), &scriptedSource{})

	a.Update(0.1)
	a.Update(0.1)
	if st := a.State(); st.Paused || st.Phase != PhaseRapid {
		t.Fatalf("state = %+v, want running Rapid", st)
	}
	a.Update(0.05)
	a.Update(0.05)
	if st := a.State(); !st.Paused || st.Phase != PhaseRapid {
		t.Fatalf("state = %+v, want paused Rapid", st)
	}
	a.Update(0.3)
	if st := a.State(); st.Paused || st.Phase != PhaseFlash {
		t.Fatalf("state = %+v, want Flash after pause", st)
	}
}

func TestZeroPauseDurationResumesOnNextTick(t *testing.T) {
	params := twoKeyParams()
	params.PausePhase = PauseInitial
	a := NewInstance(params, abGroups(), &scriptedSource{})

	a.Update(0.1)
	a.Update(0.1)
	if !a.State().Paused {
		t.Fatal("expected pause overlay")
	}
	a.Update(0.001)
	if st := a.State(); st.Paused || st.Phase != PhaseFlash {
		t.Fatalf("state = %+v, want Flash", st)
	}
}

func TestEmptyGroupsUseDefaultFrame(t *testing.T) {
	a := NewInstance(twoKeyParams(), nil, &scriptedSource{})
	for i := 0; i < 10; i++ {
		a.Update(0.1)
	}
	f := a.CurrentFrame()
	if f.Coords != (image.Point{}) || f.Effects.Flash || f.Metadata.Phase != PhaseInitial || f.Metadata.GroupID != "" {
		t.Fatalf("default frame = %+v", f)
	}
}

func TestCurrentFrameIsIdempotent(t *testing.T) {
	a := NewInstance(twoKeyParams(), abGroups(), rand.New(rand.NewSource(9)))
	for i := 0; i < 7; i++ {
		a.Update(0.05)
		first := a.CurrentFrame()
		second := a.CurrentFrame()
		if first != second {
			t.Fatalf("tick %d: %+v != %+v", i, first, second)
		}
	}
}

func TestOffsetVariantIsBaseOrOffset(t *testing.T) {
	groups := []Group{{ID: "A", Coords: map[string]Coord{
		"f": {0, 0}, "f_offset": {1, 1},
		"s": {0, 88}, "s_offset": {1, 89},
	}}}
	params := twoKeyParams()
	params.FlashDurationMs = 0

	allowed := map[string]image.Point{
		"f": image.Pt(0, 0), "f_offset": image.Pt(1, 1),
		"s": image.Pt(0, 88), "s_offset": image.Pt(1, 89),
	}
	seen := map[string]bool{}

	a := NewInstance(params, groups, rand.New(rand.NewSource(2024)))
	for i := 0; i < 600; i++ {
		a.Update(0.1)
		if a.State().Phase != PhaseInitial {
			continue
		}
		key := a.FrameKey()
		want, ok := allowed[key]
		if !ok {
			t.Fatalf("frame key %q not a base or offset key", key)
		}
		if got := a.CurrentFrame().Coords; got != want {
			t.Fatalf("key %q coords = %v, want %v", key, got, want)
		}
		seen[key] = true
	}
	if !seen["f_offset"] && !seen["s_offset"] {
		t.Error("offset variant never chosen")
	}
	if !seen["f"] && !seen["s"] {
		t.Error("base variant never chosen")
	}
}

func TestOffsetDuplicatesBaseWhenNotAuthored(t *testing.T) {
	a := NewInstance(twoKeyParams(), abGroups()[:1], &scriptedSource{floats: []float64{0.05}})
	a.Update(0.1)
	if key := a.FrameKey(); key != "s_offset" {
		t.Fatalf("frame key = %q, want s_offset", key)
	}
	if got := a.CurrentFrame().Coords; got != image.Pt(0, 88) {
		t.Fatalf("offset coords = %v, want base (0,88)", got)
	}
}

func TestMissingCoordinateFallsBackToOrigin(t *testing.T) {
	groups := []Group{{ID: "A", Stars: 3, Coords: map[string]Coord{"f": {40, 40}}}}
	a := NewInstance(twoKeyParams(), groups, &scriptedSource{})
	a.Update(0.1)

	f := a.CurrentFrame()
	if f.Coords != (image.Point{}) {
		t.Fatalf("coords = %v, want origin", f.Coords)
	}
	if f.Metadata.Stars != 3 {
		t.Fatalf("stars = %d, want 3", f.Metadata.Stars)
	}
}

func TestFrameRect(t *testing.T) {
	a := NewInstance(twoKeyParams(), abGroups()[1:], &scriptedSource{})
	got := a.CurrentFrame().Rect()
	want := image.Rect(200, 0, 376, 88)
	if got != want {
		t.Fatalf("rect = %v, want %v", got, want)
	}
}

func TestResetStartsNewCycle(t *testing.T) {
	a := NewInstance(twoKeyParams(), abGroups(), &scriptedSource{ints: []int{0, 1}})
	a.Update(0.1)
	a.Reset()
	st := a.State()
	if st.Phase != PhaseInitial || st.FrameIndex != 0 {
		t.Fatalf("state after reset = %+v", st)
	}
	if id := a.CurrentFrame().Metadata.GroupID; id != "B" {
		t.Fatalf("group after reset = %q, want B", id)
	}
}

func TestParamsValidate(t *testing.T) {
	valid := twoKeyParams()

	tests := []struct {
		name   string
		modify func(p *Params)
		want   error
	}{
		{"valid", func(p *Params) {}, nil},
		{"no keys", func(p *Params) { p.FrameKeys = nil }, ErrNoFrameKeys},
		{"empty key", func(p *Params) { p.FrameKeys = []string{"f", ""} }, ErrInvalidFrameKey},
		{"offset key", func(p *Params) { p.FrameKeys = []string{"f_offset"} }, ErrInvalidFrameKey},
		{"duplicate key", func(p *Params) { p.FrameKeys = []string{"f", "f"} }, ErrInvalidFrameKey},
		{"zero initial speed", func(p *Params) { p.InitialSpeedMs = 0 }, ErrInvalidSpeed},
		{"negative flash speed", func(p *Params) { p.FlashSpeedMs = -1 }, ErrInvalidSpeed},
		{"rapid without speed", func(p *Params) { p.RapidFrames = 2 }, ErrInvalidSpeed},
		{"zero cycles", func(p *Params) { p.InitialCycles = 0 }, ErrInvalidCycles},
		{"negative rapid frames", func(p *Params) { p.RapidFrames = -1 }, ErrInvalidCycles},
		{"negative flash duration", func(p *Params) { p.FlashDurationMs = -5 }, ErrInvalidDuration},
		{"negative pause", func(p *Params) { p.PauseDurationMs = -5 }, ErrInvalidDuration},
		{"unknown pause phase", func(p *Params) { p.PausePhase = "flash" }, ErrInvalidPausePhase},
		{"rapid pause without rapid", func(p *Params) { p.PausePhase = PauseRapid }, ErrInvalidPausePhase},
		{"rapid pause with rapid", func(p *Params) {
			p.PausePhase = PauseRapid
			p.RapidFrames = 2
			p.RapidSpeedMs = 40
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			p.FrameKeys = append([]string(nil), valid.FrameKeys...)
			tt.modify(&p)
			err := p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRapid.String() != "Rapid" || Phase(9).String() != "Phase(9)" {
		t.Fatalf("unexpected names %q %q", PhaseRapid, Phase(9))
	}
}

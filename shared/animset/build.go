package animset

import (
	"fmt"

	"github.com/automoto/marquee/assets/animations"
)

// Build creates one instance per animation and binds every follower to the
// driver. Animations that neither drive nor follow are advanced on their own
// by Timeline.Update.
func (s *Set) Build(rng animations.Source) (*Timeline, error) {
	driverDef, ok := s.Animations[s.Driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDriver, s.Driver)
	}

	driver := animations.NewInstance(driverDef.Params, driverDef.Groups, rng)
	sync, err := animations.NewSynchronizer(s.Driver, driver)
	if err != nil {
		return nil, err
	}
	tl := &Timeline{
		Sync:      sync,
		Instances: map[string]*animations.Instance{s.Driver: driver},
	}

	for _, name := range s.Names() {
		if name == s.Driver {
			continue
		}
		def := s.Animations[name]
		inst := animations.NewInstance(def.Params, def.Groups, rng)
		tl.Instances[name] = inst

		if def.Follows == "" {
			tl.standalone = append(tl.standalone, inst)
			continue
		}
		if err := tl.Sync.Bind(name, inst, nil); err != nil {
			return nil, fmt.Errorf("bind %q: %w", name, err)
		}
	}
	return tl, nil
}

// Update advances the driver, re-syncs its followers and then steps any
// standalone animations. It has the shape of an animations.Subscriber.
func (t *Timeline) Update(deltaSeconds float64) {
	t.Sync.Update(deltaSeconds)
	for _, inst := range t.standalone {
		inst.Update(deltaSeconds)
	}
}

// Frame returns the current frame of the named animation.
func (t *Timeline) Frame(name string) (animations.FrameData, bool) {
	inst, ok := t.Instances[name]
	if !ok {
		return animations.FrameData{}, false
	}
	return inst.CurrentFrame(), true
}

// Driver returns the instance that owns the timeline.
func (t *Timeline) Driver() *animations.Instance {
	return t.Sync.Driver()
}

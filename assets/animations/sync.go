package animations

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyBound  = errors.New("animations: instance already bound to a synchronizer")
	ErrDuplicateName = errors.New("animations: name already in use")
	ErrSelfBinding   = errors.New("animations: driver cannot follow itself")
	ErrNilInstance   = errors.New("animations: nil instance")
)

// IndexMapper converts the driver's frame index into a follower's.
type IndexMapper func(driverIndex int) int

type binding struct {
	name  string
	inst  *Instance
	remap IndexMapper
}

// Synchronizer drives one Instance and mirrors its phase, flash, pause and
// frame index onto any number of followers, so visually different sprites
// share a single timeline.
type Synchronizer struct {
	driverName string
	driver     *Instance
	followers  []binding
}

// NewSynchronizer makes driver the single writer of a new timeline. An
// instance can drive at most one synchronizer and cannot drive while it is
// bound as a follower.
func NewSynchronizer(driverName string, driver *Instance) (*Synchronizer, error) {
	if driver == nil {
		return nil, fmt.Errorf("%w: driver %q", ErrNilInstance, driverName)
	}
	if driver.owner != nil || driver.drives != nil {
		return nil, fmt.Errorf("%w: driver %q", ErrAlreadyBound, driverName)
	}

	s := &Synchronizer{
		driverName: driverName,
		driver:     driver,
	}
	driver.drives = s
	return s, nil
}

// Bind attaches follower under name. A nil remap passes the driver's frame
// index through unchanged. The follower is synced immediately.
func (s *Synchronizer) Bind(name string, follower *Instance, remap IndexMapper) error {
	if follower == nil {
		return fmt.Errorf("%w: %q", ErrNilInstance, name)
	}
	if follower == s.driver {
		return ErrSelfBinding
	}
	if follower.owner != nil || follower.drives != nil {
		return fmt.Errorf("%w: %q", ErrAlreadyBound, name)
	}
	if name == s.driverName || s.lookup(name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	follower.owner = s
	s.followers = append(s.followers, binding{name: name, inst: follower, remap: remap})
	s.sync(&s.followers[len(s.followers)-1], s.driver.State())
	return nil
}

// Unbind releases the follower registered under name. The released instance
// keeps its last mirrored state and resumes updating on its own.
func (s *Synchronizer) Unbind(name string) bool {
	for i, b := range s.followers {
		if b.name != name {
			continue
		}
		b.inst.owner = nil
		s.followers = append(s.followers[:i], s.followers[i+1:]...)
		return true
	}
	return false
}

// Update advances the driver and then re-syncs every follower, so followers
// never lag the driver by a tick.
func (s *Synchronizer) Update(deltaSeconds float64) {
	s.driver.Update(deltaSeconds)
	s.SyncAll()
}

// SyncAll copies the driver's current control state onto every follower.
func (s *Synchronizer) SyncAll() {
	st := s.driver.State()
	for i := range s.followers {
		s.sync(&s.followers[i], st)
	}
}

func (s *Synchronizer) sync(b *binding, st State) {
	idx := st.FrameIndex
	if b.remap != nil {
		idx = b.remap(idx)
	}
	b.inst.ApplyExternalState(st.Phase, st.FlashState, st.Paused, idx)
}

// Frame returns the current frame of the driver or a follower by name.
func (s *Synchronizer) Frame(name string) (FrameData, bool) {
	inst := s.Instance(name)
	if inst == nil {
		return FrameData{}, false
	}
	return inst.CurrentFrame(), true
}

// Instance looks up the driver or a follower by name.
func (s *Synchronizer) Instance(name string) *Instance {
	if name == s.driverName {
		return s.driver
	}
	if b := s.lookup(name); b != nil {
		return b.inst
	}
	return nil
}

func (s *Synchronizer) lookup(name string) *binding {
	for i := range s.followers {
		if s.followers[i].name == name {
			return &s.followers[i]
		}
	}
	return nil
}

func (s *Synchronizer) Driver() *Instance {
	return s.driver
}

func (s *Synchronizer) DriverName() string {
	return s.driverName
}

// Names lists the driver followed by each follower in binding order.
func (s *Synchronizer) Names() []string {
	names := make([]string, 0, len(s.followers)+1)
	names = append(names, s.driverName)
	for _, b := range s.followers {
		names = append(names, b.name)
	}
	return names
}

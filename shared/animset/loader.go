package animset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	ErrNoDriver      = errors.New("animset: driver animation not defined")
	ErrUnknownDriver = errors.New("animset: follower references unknown driver")
)

// Default decodes the embedded title screen definitions.
func Default() (*Set, error) {
	return Parse(bytes.NewReader(defaultYAML))
}

// MustDefault is Default for callers that treat a broken embedded file as a
// programming error.
func MustDefault() *Set {
	set, err := Default()
	if err != nil {
		panic(fmt.Sprintf("invalid embedded default.yaml: %v", err))
	}
	return set
}

// Parse decodes and validates a set. Unknown fields are rejected.
func Parse(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)

	var set Set
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("decode animations: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// LoadFile reads a set from disk.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open animations: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks the driver reference and every animation's params. Empty
// group lists are allowed (they render the default frame) but are logged.
func (s *Set) Validate() error {
	if _, ok := s.Animations[s.Driver]; !ok || s.Driver == "" {
		return fmt.Errorf("%w: %q", ErrNoDriver, s.Driver)
	}

	for _, name := range s.Names() {
		def := s.Animations[name]
		if err := def.Params.Validate(); err != nil {
			return fmt.Errorf("animation %q: %w", name, err)
		}
		if name == s.Driver && def.Follows != "" {
			return fmt.Errorf("%w: driver %q cannot follow %q", ErrUnknownDriver, name, def.Follows)
		}
		if def.Follows != "" && def.Follows != s.Driver {
			return fmt.Errorf("%w: %q follows %q", ErrUnknownDriver, name, def.Follows)
		}
		if len(def.Groups) == 0 {
			log.Printf("[animset] animation %q has no groups", name)
		}
	}
	return nil
}

// Names returns every animation name in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Animations))
	for name := range s.Animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Followers returns the names of animations bound to the driver, sorted.
func (s *Set) Followers() []string {
	var names []string
	for _, name := range s.Names() {
		if s.Animations[name].Follows == s.Driver {
			names = append(names, name)
		}
	}
	return names
}

// SheetSize is the largest sheet any animation declares.
func (s *Set) SheetSize() (int, int) {
	var w, h int
	for _, def := range s.Animations {
		if def.Params.SheetSize.X > w {
			w = def.Params.SheetSize.X
		}
		if def.Params.SheetSize.Y > h {
			h = def.Params.SheetSize.Y
		}
	}
	return w, h
}

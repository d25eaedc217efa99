package animations

import (
	"fmt"
	"image"
)

// OffsetSuffix marks the alternate coordinate of a frame key.
const OffsetSuffix = "_offset"

// Coord is a sprite-sheet offset in pixels. In YAML it is written as a
// two-element sequence, e.g. [200, 88].
type Coord struct {
	X, Y int
}

func (c Coord) Point() image.Point {
	return image.Pt(c.X, c.Y)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Coord) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var xy []int
	if err := unmarshal(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("animations: coordinate needs 2 values, got %d", len(xy))
	}
	c.X, c.Y = xy[0], xy[1]
	return nil
}

// Group is a named bundle of sprite coordinates, one per frame key. Keys
// with the _offset suffix are optional alternates.
type Group struct {
	ID     string           `yaml:"id"`
	Stars  int              `yaml:"stars"`
	Coords map[string]Coord `yaml:"coords"`
}

// frameTable is a Group resolved against an instance's frame keys. Slot i of
// base and offset belongs to FrameKeys[i].
type frameTable struct {
	id     string
	stars  int
	base   []Coord
	offset []Coord
}

// compileGroup builds the lookup table for g. Missing base coordinates fall
// back to the origin and are returned so the caller can report them; missing
// offsets duplicate the base coordinate.
func compileGroup(g Group, keys []string) (frameTable, []string) {
	t := frameTable{
		id:     g.ID,
		stars:  g.Stars,
		base:   make([]Coord, len(keys)),
		offset: make([]Coord, len(keys)),
	}

	var missing []string
	for i, key := range keys {
		base, ok := g.Coords[key]
		if !ok {
			missing = append(missing, key)
		}
		t.base[i] = base

		if off, ok := g.Coords[key+OffsetSuffix]; ok {
			t.offset[i] = off
		} else {
			t.offset[i] = base
		}
	}
	return t, missing
}

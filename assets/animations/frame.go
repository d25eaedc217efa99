package animations

import "image"

// FrameData is a snapshot of what to draw for one tick.
type FrameData struct {
	Coords     image.Point // top-left of the sprite on the sheet
	SpriteSize image.Point
	SheetSize  image.Point
	Effects    Effects
	Metadata   Metadata
}

// Rect is the sheet region covered by the frame.
func (f FrameData) Rect() image.Rectangle {
	return image.Rectangle{Min: f.Coords, Max: f.Coords.Add(f.SpriteSize)}
}

type Effects struct {
	Flash bool
}

type Metadata struct {
	GroupID string
	Phase   Phase
	Stars   int
}

// State is the set of control signals shared between a driver and its
// followers.
type State struct {
	Phase      Phase
	FlashState bool
	FrameIndex int
	Paused     bool
}

package assets

import (
	"fmt"
	"image"

	"github.com/automoto/marquee/assets/animations"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/shared/animset"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// SheetLoader generates sprite sheets for animation sets and caches frame
// sub-images so each region is sliced once.
type SheetLoader struct {
	sheets     map[*animset.Set]*ebiten.Image
	frameCache map[frameKey]*ebiten.Image
}

type frameKey struct {
	sheet *ebiten.Image
	rect  image.Rectangle
}

func NewSheetLoader() *SheetLoader {
	return &SheetLoader{
		sheets:     make(map[*animset.Set]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
}

var sheetLoader = NewSheetLoader()

// MustLoadSheet returns the sheet for set, painting it on first use. Every
// coordinate the set references gets a tile, so no frame is ever blank.
func (l *SheetLoader) MustLoadSheet(set *animset.Set) *ebiten.Image {
	if img, ok := l.sheets[set]; ok {
		return img
	}

	w, h := set.SheetSize()
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("animation set declares an empty sheet (%dx%d)", w, h))
	}

	img := ebiten.NewImage(w, h)
	for _, name := range set.Names() {
		paintAnimation(img, set.Animations[name])
	}

	l.sheets[set] = img
	return img
}

// GetFrame returns a cached sub-image of sheet for r.
func (l *SheetLoader) GetFrame(sheet *ebiten.Image, r image.Rectangle) *ebiten.Image {
	key := frameKey{sheet: sheet, rect: r}
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	frame := sheet.SubImage(r).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

func GetSheet(set *animset.Set) *ebiten.Image {
	return sheetLoader.MustLoadSheet(set)
}

func GetFrame(sheet *ebiten.Image, r image.Rectangle) *ebiten.Image {
	return sheetLoader.GetFrame(sheet, r)
}

// paintAnimation draws one tile per group and frame key. Groups get evenly
// spaced hues; single-group animations use the coin hue.
func paintAnimation(dst *ebiten.Image, def animset.Def) {
	size := def.Params.SpriteSize
	n := len(def.Groups)

	for gi, g := range def.Groups {
		hue := cfg.Palette.CoinHue
		if n > 1 {
			hue = float64(gi) * 360 / float64(n)
		}

		for ki, key := range def.Params.FrameKeys {
			v := cfg.Palette.Values[ki%len(cfg.Palette.Values)]
			clr := colorful.Hsv(hue, cfg.Palette.Saturation, v).Clamped()

			if c, ok := g.Coords[key]; ok {
				paintTile(dst, c, size, clr, g.Stars)
			}
			if c, ok := g.Coords[key+animations.OffsetSuffix]; ok {
				paintTile(dst, c, size, clr, g.Stars)
			}
		}
	}
}

func paintTile(dst *ebiten.Image, c animations.Coord, size image.Point, clr colorful.Color, stars int) {
	x, y := float32(c.X), float32(c.Y)
	w, h := float32(size.X), float32(size.Y)

	vector.FillRect(dst, x, y, w, h, clr, false)
	vector.StrokeRect(dst, x+1, y+1, w-2, h-2, 2, cfg.Palette.Outline, false)

	// Star pips along the bottom edge, small enough to skip on icon tiles.
	pip := h / 8
	if pip < 4 {
		return
	}
	for i := 0; i < stars; i++ {
		px := x + pip + float32(i)*pip*1.5
		vector.FillRect(dst, px, y+h-pip*2, pip, pip, cfg.White, false)
	}
}

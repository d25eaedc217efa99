package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// TitleConfig contains title screen layout values
type TitleConfig struct {
	BackgroundColor color.RGBA
	LogoY           float64 // resting top edge of the logo
	DropHeight      float64 // pixels above LogoY the logo starts from
	DropSeconds     float32 // intro drop duration
	BobHeight       float64 // pixels the logo floats up and down
	BobSeconds      float32 // duration of one half bob
	FlashColor      color.RGBA
	FlashAmount     float32 // 0..1 blend toward FlashColor while lit
	HintColor       color.RGBA
	HintY           float64
}

// HUDConfig contains the coin counter layout
type HUDConfig struct {
	Margin     float64
	CoinScale  float64
	LabelGap   float64
	TextColor  color.RGBA
	StarColor  color.RGBA
	CoinLabel  string
	StarsLabel string
}

// ClockConfig contains the global animation speed settings
type ClockConfig struct {
	ScaleSteps  []float64 // selectable speed multipliers
	DefaultStep int       // index into ScaleSteps
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool  // Start with the state overlay visible
	Seed        int64 // Random seed for group selection, 0 = time based
}

// PaletteConfig drives the generated sprite sheet colours
type PaletteConfig struct {
	Saturation float64
	Values     []float64 // brightness per frame key, cycled
	CoinHue    float64
	Outline    color.RGBA
}

// Global configuration instances
var C *Config
var Title TitleConfig
var HUD HUDConfig
var Clock ClockConfig
var Debug DebugConfig
var Palette PaletteConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	NightBlue    = color.RGBA{R: 8, G: 10, B: 32, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Marquee",
	}

	Title = TitleConfig{
		BackgroundColor: NightBlue,
		LogoY:           90,
		DropHeight:      160,
		DropSeconds:     1.2,
		BobHeight:       4,
		BobSeconds:      1.5,
		FlashColor:      BrightYellow,
		FlashAmount:     0.65,
		HintColor:       LightBlue,
		HintY:           330,
	}

	HUD = HUDConfig{
		Margin:     10,
		CoinScale:  1.5,
		LabelGap:   6,
		TextColor:  White,
		StarColor:  Yellow,
		CoinLabel:  "x%02d",
		StarsLabel: "%d STAR",
	}

	Clock = ClockConfig{
		ScaleSteps:  []float64{0, 0.1, 0.25, 0.5, 1, 2, 4},
		DefaultStep: 4,
	}

	Palette = PaletteConfig{
		Saturation: 0.75,
		Values:     []float64{1.0, 0.8, 0.6},
		CoinHue:    48,
		Outline:    color.RGBA{R: 20, G: 20, B: 20, A: 255},
	}
}

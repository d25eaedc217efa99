package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/marquee/assets"
	"github.com/automoto/marquee/config"
	"github.com/automoto/marquee/fonts"
	"github.com/automoto/marquee/scenes"
	"github.com/automoto/marquee/shared/animset"
	"github.com/automoto/marquee/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(set *animset.Set) *Game {
	fonts.LoadDefaults()
	if err := assets.LoadShaders(); err != nil {
		log.Printf("[main] shaders unavailable, flashing with colour scale: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewTitleScene(set),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Animation YAML file (empty = built-in title screen)")
	seed := flag.Int64("seed", config.Debug.Seed, "Random seed for group selection (0 = time based)")
	debug := flag.Bool("debug", config.Debug.ShowOverlay, "Start with the state overlay visible")
	flag.Parse()

	config.Debug.Seed = *seed
	config.Debug.ShowOverlay = *debug

	set := animset.MustDefault()
	if *configPath != "" {
		var err error
		if set, err = animset.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load animations: %v", err)
		}
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("[main] could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		if *debug {
			saved.Debug = true
		}
		systems.ApplySavedSettingsGlobal(saved)
	}

	systems.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame(set)); err != nil {
		log.Fatal(err)
	}
}

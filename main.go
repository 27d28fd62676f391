package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/sweepbox/assets"
	"github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/fonts"
	"github.com/automoto/sweepbox/scenes"
	"github.com/automoto/sweepbox/shared/leveldata"
	"github.com/automoto/sweepbox/systems"
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

func NewGame(name string, level *leveldata.CollisionData) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSandboxScene(name, level),
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
	levelName := flag.String("level", assets.DefaultLevel, "Embedded level name")
	levelFile := flag.String("tmx", "", "Load a level from a TMX file instead of the embedded ones")
	configFile := flag.String("config", "", "YAML file with physics and player overrides")
	detector := flag.String("detector", "", "Collision detector: sweep or corner")
	fixedStep := flag.Float64("fixedstep", -1, "Fixed timestep in seconds (0 = wall clock)")
	debug := flag.Bool("debug", config.Debug.Enabled, "Draw collider outlines")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if *configFile != "" {
		if err := config.LoadFile(*configFile); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags win over saved settings and the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "detector":
			config.Physics.Detector = *detector
		case "fixedstep":
			config.Physics.FixedTimestep = *fixedStep
		case "debug":
			config.Debug.Enabled = *debug
		}
	})
	if err := config.Physics.Validate(); err != nil {
		log.Fatalf("Invalid physics settings: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	level, name, err := loadLevel(*levelName, *levelFile)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("sweepbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(name, level)); err != nil {
		log.Fatal(err)
	}
}

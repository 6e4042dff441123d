package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/doomerang-fx/clock"
	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/fonts"
	"github.com/automoto/doomerang-fx/network"
	"github.com/automoto/doomerang-fx/scenes"
	"github.com/automoto/doomerang-fx/shared/protocol"
	"github.com/automoto/doomerang-fx/systems"
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

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
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
	address := flag.String("addr", config.Net.ServerAddress, "Game server address (host:port)")
	name := flag.String("name", config.Net.PlayerName, "Name sent in the join request")
	spectator := flag.Bool("spectate", config.Net.Spectator, "Join without a player of our own")
	tuningPath := flag.String("tuning", "", "YAML file overriding effect timings")
	flag.Parse()

	config.Net.Spectator = *spectator

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Printf("Warning: Could not load tuning, using defaults: %v", err)
		} else {
			config.Effects = *tuning
		}
	}

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadOverlay(); err == nil && saved != nil {
		config.Overlay = *saved
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("doomerang-fx")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	scene := scenes.NewRemotePlayersScene(network.NewClient(), &config.Effects, clock.System{}, *address, *name)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"image"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/automoto/poetics/config"
	"github.com/automoto/poetics/fonts"
	"github.com/automoto/poetics/proxy"
	"github.com/automoto/poetics/scenes"
	"github.com/automoto/poetics/sound"
	"github.com/automoto/poetics/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene, closing the one it replaces
func (g *Game) ChangeScene(scene interface{}) {
	next := scene.(scenes.Scene)
	if g.scene != nil && g.scene != next {
		g.scene.Close()
	}
	g.scene = next
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rect(0, 0, config.C.Width, config.C.Height),
	}

	// Initialize persistence and load saved settings
	store, err := systems.OpenSettingsStore(config.Lab.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings, err := store.Load()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}

	player := sound.NewPlayer(settings.EffectiveVolume())
	player.Preload()

	lab := &scenes.Lab{
		Changer:  g,
		Store:    store,
		Settings: settings,
		Player:   player,
		Client:   proxy.NewClient(proxyURL(), &http.Client{Timeout: 60 * time.Second}),
		Bounds:   func() image.Rectangle { return g.bounds },
	}
	log.Printf("[lab] proxy at %s", lab.Client.BaseURL())

	tab := settings.LastTab
	if config.Debug.StartGarden {
		tab = config.TabGarden
	}
	g.scene = lab.Open(tab)
	return g
}

func proxyURL() string {
	if u := os.Getenv(config.Lab.ProxyURLEnv); u != "" {
		return u
	}
	return config.Lab.DefaultProxyURL
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the canvases always fill it
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, width, height)
	return width, height
}

func main() {
	flag.BoolVar(&config.Debug.StartGarden, "garden", false, "open straight into the Garden")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

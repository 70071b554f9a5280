package scenes

import (
	"sync"
	"time"

	"github.com/automoto/poetics/canvas"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/controls"
	"github.com/automoto/poetics/garden"
	"github.com/automoto/poetics/render"
	"github.com/automoto/poetics/systems"
	"github.com/automoto/poetics/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GardenScene hosts the Garden toy and its overlay
type GardenScene struct {
	lab     *Lab
	sim     *garden.Simulation
	canvas  *canvas.Canvas
	poller  *controls.Poller
	ui      *ui.GardenUI
	list    *render.List
	overlay *render.List
	start   time.Time
	once    sync.Once
	closed  bool
}

func NewGardenScene(lab *Lab) *GardenScene {
	return &GardenScene{lab: lab}
}

func (gs *GardenScene) configure() {
	var cues systems.CuePlayer
	if gs.lab.Player != nil {
		cues = gs.lab.Player
	}
	gs.sim = garden.NewSimulation(cues)
	gs.canvas = canvas.New()
	gs.poller = controls.NewPoller()
	gs.overlay = render.NewList(16)
	gs.start = time.Now()

	gs.ui = ui.NewGardenUI(gs.lab.tabBar(cfg.TabGarden, func(s systems.SavedSettings) {
		gs.ui.SetVolume(s)
	}))
	gs.ui.OnEnter = gs.enterSession
	gs.ui.OnExit = gs.exitSession
}

// enterSession starts a fresh session sized to the current canvas
func (gs *GardenScene) enterSession() {
	w, h := gs.lab.Size()
	gs.sim.Start(w, h)
}

// exitSession returns to the call to action. The Garden tab stays open.
func (gs *GardenScene) exitSession() {
	gs.sim.Exit()
}

func (gs *GardenScene) Update() {
	if gs.closed {
		return
	}
	gs.once.Do(gs.configure)

	gs.ui.Update(gs.sim.State() == garden.Running)
	if gs.closed {
		// a tab button switched scenes
		return
	}

	w, h := gs.lab.Size()
	gs.poller.Poll(w, h)
	if gs.sim.HandleWheel(gs.poller.WheelDelta()) {
		return
	}
	if gs.poller.JustPressed(cfg.ActionExit) && gs.sim.HandleEscape() {
		return
	}

	fc := render.FrameContext{
		CanvasWidth:  w,
		CanvasHeight: h,
		ElapsedMs:    float64(time.Since(gs.start).Microseconds()) / 1000,
	}
	gs.list = gs.sim.Step(fc, gs.poller.Garden())

	gs.overlay.Reset()
	if gs.sim.State() == garden.Running && gs.poller.TouchActive() {
		controls.DrawTouchButtons(gs.overlay, w, h, gs.poller.Held())
	}
}

func (gs *GardenScene) Draw(screen *ebiten.Image) {
	if gs.closed {
		return
	}
	screen.Fill(cfg.Garden.BackgroundColor)
	if gs.sim == nil {
		return
	}

	running := gs.sim.State() == garden.Running
	if running {
		gs.canvas.Execute(screen, gs.list)
		gs.canvas.Execute(screen, gs.overlay)
	}
	gs.ui.Draw(screen, running)
}

// Close ends any running session
func (gs *GardenScene) Close() {
	gs.closed = true
	if gs.sim != nil {
		gs.sim.Exit()
	}
}

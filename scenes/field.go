package scenes

import (
	"sync"
	"time"

	"github.com/automoto/poetics/canvas"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/controls"
	"github.com/automoto/poetics/field"
	"github.com/automoto/poetics/fonts"
	"github.com/automoto/poetics/render"
	"github.com/automoto/poetics/systems"
	"github.com/automoto/poetics/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FieldScene shows the attention field under the tab bar
type FieldScene struct {
	lab    *Lab
	sim    *field.Simulation
	canvas *canvas.Canvas
	poller *controls.Poller
	ui     *ui.FieldUI
	list   *render.List
	start  time.Time
	once   sync.Once
	closed bool
}

func NewFieldScene(lab *Lab) *FieldScene {
	return &FieldScene{lab: lab}
}

func (fs *FieldScene) configure() {
	fs.sim = field.NewSimulation()
	fs.canvas = canvas.New()
	fs.poller = controls.NewPoller()
	fs.start = time.Now()
	fs.ui = ui.NewFieldUI(fs.lab.tabBar(cfg.TabField, func(s systems.SavedSettings) {
		fs.ui.SetVolume(s)
	}))
}

func (fs *FieldScene) Update() {
	if fs.closed {
		return
	}
	fs.once.Do(fs.configure)

	w, h := fs.lab.Size()
	fs.poller.Poll(w, h)
	pointer := fs.poller.Pointer()
	if !ebiten.IsFocused() {
		pointer = field.Away()
	}

	fc := render.FrameContext{
		CanvasWidth:  w,
		CanvasHeight: h,
		ElapsedMs:    float64(time.Since(fs.start).Microseconds()) / 1000,
	}
	fs.list = fs.sim.Step(fc, pointer)
	fs.ui.Update()
}

func (fs *FieldScene) Draw(screen *ebiten.Image) {
	if fs.closed {
		return
	}
	screen.Fill(cfg.Field.BackgroundColor)
	if fs.list == nil {
		return
	}
	fs.canvas.Execute(screen, fs.list)
	drawCaption(screen, cfg.Lab.Tabs[cfg.TabField])
	fs.ui.Draw(screen)
}

// Close detaches the scene. The field keeps no state worth saving.
func (fs *FieldScene) Close() {
	fs.closed = true
	fs.list = nil
}

// drawCaption writes the tab title and subtitle in the bottom left corner
func drawCaption(screen *ebiten.Image, info cfg.TabInfo) {
	h := float64(screen.Bounds().Dy())

	op := &text.DrawOptions{}
	op.GeoM.Translate(24, h-72)
	op.ColorScale.ScaleWithColor(cfg.Ink)
	text.Draw(screen, info.Title, fonts.Title.Face(), op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(24, h-36)
	op.ColorScale.ScaleWithColor(cfg.Muted)
	text.Draw(screen, info.Subtitle, fonts.Small.Face(), op)
}

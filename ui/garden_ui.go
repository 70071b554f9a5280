package ui

import (
	"image/color"

	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// GardenUI is the Garden overlay: a call to action while idle and a hint
// with an exit button while a session runs.
type GardenUI struct {
	faces   Faces
	idle    *ebitenui.UI
	running *ebitenui.UI
	tabs    *TabBar

	// Callbacks
	OnEnter func()
	OnExit  func()
}

func NewGardenUI(bar TabBarConfig) *GardenUI {
	ui := &GardenUI{faces: loadFaces()}
	ui.idle = &ebitenui.UI{Container: ui.buildIdle(bar)}
	ui.running = &ebitenui.UI{Container: ui.buildRunning()}
	return ui
}

func (ui *GardenUI) buildIdle(bar TabBarConfig) *widget.Container {
	root := newRoot(nil)

	ui.tabs = newTabBar(&ui.faces, bar)
	top := newColumn(0, widget.NewInsetsSimple(16))
	top.AddChild(ui.tabs.widget())
	wrapper := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionStart),
	)
	wrapper.AddChild(top)
	root.AddChild(wrapper)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{255, 255, 255, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter),
	)
	panel.AddChild(newLabel(cfg.Lab.GardenCTATitle, &ui.faces.Title, cfg.Ink))
	panel.AddChild(newLabel(WrapText(cfg.Lab.GardenCTABody, 48), &ui.faces.Normal, cfg.Muted))
	panel.AddChild(newButton(cfg.Lab.GardenCTAStart, &ui.faces.Normal, pillStyle, 160, 34, func() {
		if ui.OnEnter != nil {
			ui.OnEnter()
		}
	}))
	root.AddChild(panel)

	return root
}

func (ui *GardenUI) buildRunning() *widget.Container {
	root := newRoot(nil)

	hint := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{255, 255, 255, 204})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
		anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionStart),
	)
	hint.AddChild(newLabel(cfg.Lab.GardenHint, &ui.faces.Small, cfg.Ink))
	root.AddChild(hint)

	exit := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
		anchored(widget.AnchorLayoutPositionEnd, widget.AnchorLayoutPositionStart),
	)
	exit.AddChild(newButton(cfg.Lab.GardenExit, &ui.faces.Small, quietStyle, 100, 26, func() {
		if ui.OnExit != nil {
			ui.OnExit()
		}
	}))
	root.AddChild(exit)

	return root
}

// SetVolume refreshes the tab bar's volume toggle
func (ui *GardenUI) SetVolume(settings systems.SavedSettings) {
	ui.tabs.SetVolume(settings)
}

// Update processes widget input for the overlay that matches the session
func (ui *GardenUI) Update(running bool) {
	if running {
		ui.running.Update()
		return
	}
	ui.idle.Update()
}

func (ui *GardenUI) Draw(screen *ebiten.Image, running bool) {
	if running {
		ui.running.Draw(screen)
		return
	}
	ui.idle.Draw(screen)
}

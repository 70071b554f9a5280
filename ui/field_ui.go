package ui

import (
	"github.com/automoto/poetics/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// FieldUI floats the tab bar over the attention field
type FieldUI struct {
	ui    *ebitenui.UI
	faces Faces
	tabs  *TabBar
}

func NewFieldUI(bar TabBarConfig) *FieldUI {
	ui := &FieldUI{faces: loadFaces()}

	root := newRoot(nil)
	top := newColumn(0, widget.NewInsetsSimple(16))
	top.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	ui.tabs = newTabBar(&ui.faces, bar)
	top.AddChild(ui.tabs.widget())
	root.AddChild(top)

	ui.ui = &ebitenui.UI{Container: root}
	return ui
}

// SetVolume refreshes the tab bar's volume toggle
func (ui *FieldUI) SetVolume(settings systems.SavedSettings) {
	ui.tabs.SetVolume(settings)
}

func (ui *FieldUI) Update() {
	ui.ui.Update()
}

func (ui *FieldUI) Draw(screen *ebiten.Image) {
	ui.ui.Draw(screen)
}

package ui

import (
	"image/color"
	"strings"

	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const submitLabel = "Deconstruct"

// IconoclastUI is the archetype form: a word goes in, a short history of its
// disruption comes back.
type IconoclastUI struct {
	ui    *ebitenui.UI
	faces Faces
	tabs  *TabBar

	input       *widget.TextInput
	submitBtn   *widget.Button
	statusLabel *widget.Label
	outputLabel *widget.Label

	pending bool

	// OnSubmit receives the trimmed word
	OnSubmit func(word string)
}

func NewIconoclastUI(bar TabBarConfig) *IconoclastUI {
	ui := &IconoclastUI{faces: loadFaces()}
	ui.ui = &ebitenui.UI{Container: ui.buildUI(bar)}
	return ui
}

func (ui *IconoclastUI) buildUI(bar TabBarConfig) *widget.Container {
	root := newRoot(cfg.Paper)

	panel := newColumn(12, widget.NewInsetsSimple(24))
	wrapper := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		anchored(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionStart),
	)

	ui.tabs = newTabBar(&ui.faces, bar)
	panel.AddChild(ui.tabs.widget())

	info := cfg.Lab.Tabs[cfg.TabIconoclast]
	panel.AddChild(newLabel(info.Title, &ui.faces.Title, cfg.Ink))
	panel.AddChild(newLabel(strings.ToUpper(info.Subtitle), &ui.faces.Small, cfg.Muted))
	panel.AddChild(ui.buildForm())

	ui.statusLabel = newLabel(cfg.Lab.IconoclastIdle, &ui.faces.Small, cfg.Muted)
	panel.AddChild(ui.statusLabel)

	ui.outputLabel = newLabel("", &ui.faces.Normal, cfg.Ink)
	panel.AddChild(ui.outputLabel)

	wrapper.AddChild(panel)
	root.AddChild(wrapper)
	return root
}

func (ui *IconoclastUI) buildForm() *widget.Container {
	row := newRow(8)

	ui.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(380, 30)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(cfg.White),
			Disabled: image.NewNineSliceColor(cfg.Bone),
		}),
		widget.TextInputOpts.Face(&ui.faces.Normal),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.Ink,
			Disabled:      cfg.Muted,
			Caret:         cfg.Signal,
			DisabledCaret: color.RGBA{0, 0, 0, 0},
		}),
		widget.TextInputOpts.Placeholder(cfg.Lab.IconoclastPlaceholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(6)),
	)
	row.AddChild(ui.input)

	ui.submitBtn = newButton(submitLabel, &ui.faces.Normal, pillStyle, 120, 30, func() {
		ui.Submit()
	})
	row.AddChild(ui.submitBtn)

	return row
}

// Word returns the trimmed contents of the input
func (ui *IconoclastUI) Word() string {
	return strings.TrimSpace(ui.input.GetText())
}

// Submit hands the current word to OnSubmit. Empty input and submissions
// while a request is pending are ignored. It reports whether it submitted.
func (ui *IconoclastUI) Submit() bool {
	word := ui.Word()
	if word == "" || ui.pending {
		return false
	}
	if ui.OnSubmit != nil {
		ui.OnSubmit(word)
	}
	return true
}

// SetPending locks the form while a request is in flight
func (ui *IconoclastUI) SetPending(pending bool) {
	ui.pending = pending
	ui.input.GetWidget().Disabled = pending
	ui.submitBtn.GetWidget().Disabled = pending
	if t := ui.submitBtn.Text(); t != nil {
		if pending {
			t.Label = "..."
		} else {
			t.Label = submitLabel
		}
	}
}

// Pending reports whether the form is locked
func (ui *IconoclastUI) Pending() bool {
	return ui.pending
}

func (ui *IconoclastUI) SetStatus(msg string) {
	ui.statusLabel.Label = msg
}

// SetOutput shows text quoted and wrapped, or clears the output when empty
func (ui *IconoclastUI) SetOutput(text string) {
	if text == "" {
		ui.outputLabel.Label = ""
		return
	}
	ui.outputLabel.Label = Quote(text, cfg.Lab.IconoclastWrapColumns)
}

// SetVolume refreshes the tab bar's volume toggle
func (ui *IconoclastUI) SetVolume(settings systems.SavedSettings) {
	ui.tabs.SetVolume(settings)
}

func (ui *IconoclastUI) Update() {
	ui.ui.Update()
}

func (ui *IconoclastUI) Draw(screen *ebiten.Image) {
	ui.ui.Draw(screen)
}

// Package ui builds the lab's ebitenui widgets: the prototype tabs, the
// Garden call to action and the Iconoclast form.
package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/poetics/config"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces are the text faces the lab widgets are drawn with
type Faces struct {
	Title  text.Face
	Normal text.Face
	Small  text.Face
}

func loadFaces() Faces {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	return Faces{
		Title:  &text.GoTextFace{Source: fontSource, Size: 24},
		Normal: &text.GoTextFace{Source: fontSource, Size: 14},
		Small:  &text.GoTextFace{Source: fontSource, Size: 11},
	}
}

// buttonStyle is the palette for one kind of button
type buttonStyle struct {
	idle, hover, pressed, disabled color.Color
	text, hoverText, disabledText  color.Color
}

var (
	pillStyle = buttonStyle{
		idle:         cfg.Signal,
		hover:        cfg.Ink,
		pressed:      cfg.Ink,
		disabled:     cfg.Muted,
		text:         cfg.White,
		hoverText:    cfg.White,
		disabledText: cfg.Bone,
	}
	quietStyle = buttonStyle{
		idle:         color.RGBA{255, 255, 255, 230},
		hover:        cfg.Signal,
		pressed:      cfg.Signal,
		disabled:     cfg.Bone,
		text:         cfg.Ink,
		hoverText:    cfg.White,
		disabledText: cfg.Muted,
	}
	tabStyle = buttonStyle{
		idle:         color.RGBA{0, 0, 0, 13},
		hover:        color.RGBA{0, 0, 0, 26},
		pressed:      cfg.White,
		disabled:     cfg.White,
		text:         color.RGBA{0, 0, 0, 102},
		hoverText:    cfg.Ink,
		disabledText: cfg.Ink,
	}
)

func newButton(label string, face *text.Face, style buttonStyle, minW, minH int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, minH)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(style.idle),
			Hover:    image.NewNineSliceColor(style.hover),
			Pressed:  image.NewNineSliceColor(style.pressed),
			Disabled: image.NewNineSliceColor(style.disabled),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     style.text,
			Hover:    style.hoverText,
			Pressed:  style.hoverText,
			Disabled: style.disabledText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

func newColumn(spacing int, padding *widget.Insets) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func newRow(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func anchored(h, v widget.AnchorLayoutPosition) widget.ContainerOpt {
	return widget.ContainerOpts.WidgetOpts(
		widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: h,
			VerticalPosition:   v,
		}),
	)
}

func newRoot(background color.Color) *widget.Container {
	opts := []widget.ContainerOpt{widget.ContainerOpts.Layout(widget.NewAnchorLayout())}
	if background != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(background)))
	}
	return widget.NewContainer(opts...)
}

package controls

import (
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/render"
)

// DrawTouchButtons adds the on-screen controls to list, highlighting the
// held ones
func DrawTouchButtons(list *render.List, w, h float64, held [cfg.ActionCount]bool) {
	for _, b := range cfg.Touch.Buttons {
		x, y := ButtonCenter(b, w, h)

		fill, alpha, glyph := cfg.White, 0.2, cfg.Ink
		if b.Action == cfg.ActionJump {
			fill, alpha, glyph = cfg.Signal, 0.8, cfg.White
		}
		if held[b.Action] {
			alpha += 0.15
		}
		list.Add(
			render.Circle(render.LayerOverlay, x, y, b.Radius).WithFill(fill).WithAlpha(alpha),
			render.Circle(render.LayerOverlay, x, y, b.Radius).WithStroke(cfg.Muted, 1),
			render.PathCommand(render.LayerOverlay, chevron(b.Action)).
				WithTransform(render.At(x, y)).
				WithStroke(glyph, 2).
				WithRoundCap(),
		)
	}
}

// chevron is an arrow head pointing in the direction of action
func chevron(action cfg.ActionID) render.Path {
	const s = 8
	switch action {
	case cfg.ActionMoveLeft:
		return render.Path(nil).MoveTo(s/2, -s).LineTo(-s/2, 0).LineTo(s/2, s)
	case cfg.ActionMoveRight:
		return render.Path(nil).MoveTo(-s/2, -s).LineTo(s/2, 0).LineTo(-s/2, s)
	default:
		return render.Path(nil).MoveTo(-s, s/2).LineTo(0, -s/2).LineTo(s, s/2)
	}
}

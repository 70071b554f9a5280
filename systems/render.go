package systems

import (
	"math"

	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/render"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EmitGarden writes the frame's draw commands, back to front.
// Must run LAST so every position is final.
func EmitGarden(e *ecs.ECS) {
	frame := GetFrame(e)
	if frame == nil {
		return
	}
	list := frame.List
	g := cfg.Garden

	list.Add(render.Clear(render.LayerBackground, g.BackgroundColor))

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Platform.Get(entry)
		list.Add(render.Rect(render.LayerPlatform, p.X, p.Y, p.W, p.H).WithFill(g.InkColor))
	})

	list.Add(render.Line(render.LayerFloor, 0, frame.FloorY, frame.Width, frame.FloorY).
		WithStroke(cfg.Black, 1))

	components.Flower.Each(e.World, func(entry *donburi.Entry) {
		emitFlower(list, components.Flower.Get(entry))
	})

	components.Seed.Each(e.World, func(entry *donburi.Entry) {
		seed := components.Seed.Get(entry)
		if seed.Collected {
			return
		}
		emitSeed(list, seed, float64(frame.Tick))
	})

	if entry, ok := components.Butterfly.First(e.World); ok {
		emitButterfly(list, components.Butterfly.Get(entry))
	}

	if entry, ok := components.Ball.First(e.World); ok {
		ball := components.Ball.Get(entry)
		list.Add(render.Circle(render.LayerBall, ball.X, ball.Y, ball.Radius).WithFill(ball.Color))
	}
}

func emitFlower(list *render.List, f *components.FlowerData) {
	s := f.Scale * f.Grown
	tr := render.At(f.X, f.Y).Scaled(s, s)
	width := cfg.Garden.FlowerLineWidth

	stroke := func(c render.Command) render.Command {
		return c.WithTransform(tr).WithStroke(f.Color, width).WithRoundCap().WithAlpha(f.Opacity)
	}
	fill := func(c render.Command) render.Command {
		return c.WithTransform(tr).WithFill(f.Color).WithAlpha(f.Opacity)
	}
	const layer = render.LayerFlower

	switch f.Kind {
	case components.FlowerBulb:
		list.Add(
			stroke(render.Line(layer, 0, 0, 0, -30)),
			fill(render.Circle(layer, 0, -35, 6)),
		)
	case components.FlowerFork:
		list.Add(
			stroke(render.Line(layer, 0, 0, -10, -25)),
			stroke(render.Line(layer, 0, 0, 10, -25)),
			fill(render.Circle(layer, -10, -25, 3)),
			fill(render.Circle(layer, 10, -25, 3)),
		)
	case components.FlowerVine:
		vine := render.Path(nil).MoveTo(0, 0).CubicTo(10, -10, -10, -20, 5, -40)
		list.Add(stroke(render.PathCommand(layer, vine)))
	case components.FlowerFern:
		list.Add(stroke(render.Line(layer, 0, 0, 0, -40)))
		for j := 0; j < 5; j++ {
			y := -10 - float64(j)*6
			list.Add(
				stroke(render.Line(layer, 0, y, -8, y-5)),
				stroke(render.Line(layer, 0, y, 8, y-5)),
			)
		}
	case components.FlowerTulip:
		list.Add(
			stroke(render.Line(layer, 0, 0, 0, -20)),
			fill(render.Ellipse(layer, 0, -30, 5, 12, 0)),
			fill(render.Ellipse(layer, -8, -26, 5, 10, -0.5)),
			fill(render.Ellipse(layer, 8, -26, 5, 10, 0.5)),
		)
	}
}

func emitSeed(list *render.List, seed *components.SeedData, tick float64) {
	g := cfg.Garden
	floatY := seed.Y + math.Sin(tick/g.SeedFloatPeriod)*g.SeedFloatAmp
	tr := render.At(seed.X, floatY).Rotated(tick / g.SeedSpinPeriod)
	halo := g.SeedHaloRadius + math.Sin(tick/g.SeedHaloPeriod)*g.SeedHaloPulse

	body := render.Path(nil).
		MoveTo(0, -6).
		CubicTo(4, -4, 4, 4, 0, 6).
		CubicTo(-4, 4, -4, -4, 0, -6).
		Close()

	list.Add(
		render.Circle(render.LayerSeed, 0, 0, halo).WithTransform(tr).WithFill(g.HaloColor),
		render.PathCommand(render.LayerSeed, body).WithTransform(tr).WithFill(g.InkColor),
	)
}

func emitButterfly(list *render.List, b *components.ButterflyData) {
	g := cfg.Garden
	tr := render.At(b.X, b.Y).Rotated(math.Sin(b.Timer*0.2) * 0.2)
	flap := math.Abs(math.Cos(b.Timer * 0.5))
	const layer = render.LayerButterfly

	list.Add(
		render.Ellipse(layer, -6, -4, 8, 12*flap, -0.3).WithTransform(tr).WithFill(g.WingColor),
		render.Ellipse(layer, 6, -4, 8, 12*flap, 0.3).WithTransform(tr).WithFill(g.WingColor),
		render.Circle(layer, -6, -4, 2).WithTransform(tr).WithFill(g.InkColor),
		render.Circle(layer, 6, -4, 2).WithTransform(tr).WithFill(g.InkColor),
		render.Ellipse(layer, 0, 0, 1.5, 6, 0).WithTransform(tr).WithFill(g.InkColor),
		render.Line(layer, 0, -4, -3, -8).WithTransform(tr).WithStroke(g.InkColor, 0.5),
		render.Line(layer, 0, -4, 3, -8).WithTransform(tr).WithStroke(g.InkColor, 0.5),
	)
}

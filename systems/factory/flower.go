package factory

import (
	"image/color"

	"github.com/automoto/poetics/archetypes"
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFlower spawns a seedling at (x, y). Growth and fade are frame-driven
// tweens: each Update(1) advances one frame.
func CreateFlower(ecs *ecs.ECS, x, y float64, kind components.FlowerKind, c color.RGBA, scale float64) *donburi.Entry {
	flower := archetypes.Flower.Spawn(ecs)
	g := cfg.Garden
	components.Flower.SetValue(flower, components.FlowerData{
		X:       x,
		Y:       y,
		Kind:    kind,
		Color:   c,
		Scale:   scale,
		Growth:  gween.New(0, 1, float32(g.FlowerGrowFrames), ease.Linear),
		Fade:    gween.New(1, 0, float32(g.FlowerFadeFrames), ease.Linear),
		Opacity: 1,
	})
	return flower
}

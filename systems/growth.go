package systems

import (
	"math"

	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrowth may sprout a flower where the ball just landed hard.
// Must run AFTER UpdateWalls.
func UpdateGrowth(e *ecs.ECS) {
	frame := GetFrame(e)
	entry, ok := components.Ball.First(e.World)
	if !ok || frame == nil {
		return
	}
	ball := components.Ball.Get(entry)
	physics := components.Physics.Get(entry)
	g := cfg.Garden

	if !physics.Grounded || math.Abs(physics.SpeedY) <= g.FlowerImpactSpeed {
		return
	}
	if frame.Rand.Float64() >= g.FlowerChance {
		return
	}

	kind := components.FlowerKind(frame.Rand.IntN(g.FlowerKinds))
	scale := g.FlowerMinScale + frame.Rand.Float64()*g.FlowerScaleRange
	factory.CreateFlower(e, ball.X, physics.ImpactY, kind, g.Palette[frame.Palette], scale)
}

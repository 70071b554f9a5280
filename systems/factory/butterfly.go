package factory

import (
	"github.com/automoto/poetics/archetypes"
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateButterfly spawns the follower just off the left edge. It is not part of
// the broad-phase space since nothing collides with it.
func CreateButterfly(ecs *ecs.ECS, height float64) *donburi.Entry {
	b := archetypes.Butterfly.Spawn(ecs)
	components.Butterfly.SetValue(b, components.ButterflyData{
		X: cfg.Garden.ButterflyStartX,
		Y: height / 2,
	})
	return b
}

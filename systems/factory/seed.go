package factory

import (
	"math/rand/v2"

	"github.com/automoto/poetics/archetypes"
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSeed spawns an uncollected seed at a random position.
func CreateSeed(ecs *ecs.ECS, space *resolv.Space, rng *rand.Rand, width, height float64) *donburi.Entry {
	seed := archetypes.Seed.Spawn(ecs)
	x, y := SeedPosition(rng, width, height)
	components.Seed.SetValue(seed, components.SeedData{X: x, Y: y})

	obj := resolv.NewObject(x, y, 1, 1, tags.ResolvSeed)
	obj.Data = seed
	components.Object.SetValue(seed, components.ObjectData{Object: obj})
	space.Add(obj)

	return seed
}

// CreateSeeds spawns the configured number of seeds.
func CreateSeeds(ecs *ecs.ECS, space *resolv.Space, rng *rand.Rand, width, height float64) []*donburi.Entry {
	out := make([]*donburi.Entry, 0, cfg.Garden.SeedCount)
	for i := 0; i < cfg.Garden.SeedCount; i++ {
		out = append(out, CreateSeed(ecs, space, rng, width, height))
	}
	return out
}

// SeedPosition picks a spawn point inside the upper band of the canvas.
func SeedPosition(rng *rand.Rand, width, height float64) (float64, float64) {
	g := cfg.Garden
	x := rng.Float64()*(width-2*g.SeedMarginX) + g.SeedMarginX
	y := rng.Float64()*(height*g.SeedBand) + g.SeedTop
	return x, y
}

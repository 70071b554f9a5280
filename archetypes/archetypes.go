package archetypes

import (
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Physics,
		components.Sensor,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Seed = newArchetype(
		tags.Seed,
		components.Seed,
		components.Object,
	)
	Flower = newArchetype(
		tags.Flower,
		components.Flower,
	)
	Butterfly = newArchetype(
		tags.Butterfly,
		components.Butterfly,
	)
	Space = newArchetype(
		components.Space,
	)
	Frame = newArchetype(
		components.Frame,
		components.Input,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

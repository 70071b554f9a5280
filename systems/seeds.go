package systems

import (
	"math"

	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/systems/factory"
	"github.com/automoto/poetics/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSeeds respawns seeds whose cooldown elapsed, then collects any seed
// within reach of the ball. A collected seed leaves the space until it respawns.
func UpdateSeeds(e *ecs.ECS) {
	frame := GetFrame(e)
	entry, ok := components.Ball.First(e.World)
	if !ok || frame == nil {
		return
	}
	space := factory.GetSpace(e)
	g := cfg.Garden

	components.Seed.Each(e.World, func(se *donburi.Entry) {
		seed := components.Seed.Get(se)
		if !seed.Collected || frame.ElapsedMs-seed.CollectedAt < g.SeedRespawnMs {
			return
		}
		seed.X, seed.Y = factory.SeedPosition(frame.Rand, frame.Width, frame.Height)
		seed.Collected = false

		obj := components.Object.Get(se)
		obj.X, obj.Y = seed.X, seed.Y
		if space != nil {
			space.Add(obj.Object)
		}
	})

	ball := components.Ball.Get(entry)
	reach := ball.Radius + g.PickupPadding
	probe := components.Sensor.Get(entry).Pickup
	probe.X, probe.Y = ball.X-reach, ball.Y-reach
	probe.W, probe.H = 2*reach, 2*reach
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvSeed)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvSeed) {
		se, ok := obj.Data.(*donburi.Entry)
		if !ok || !se.Valid() {
			continue
		}
		seed := components.Seed.Get(se)
		if seed.Collected || math.Hypot(seed.X-ball.X, seed.Y-ball.Y) >= reach {
			continue
		}

		seed.Collected = true
		seed.CollectedAt = frame.ElapsedMs
		if obj.Space != nil {
			obj.Space.Remove(obj)
		}

		frame.Palette = (frame.Palette + 1) % len(g.Palette)
		ball.Color = g.Palette[frame.Palette]
		QueueCue(e, cfg.CueCollect)
	}
}

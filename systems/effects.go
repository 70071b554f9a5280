package systems

import (
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlowers ages every flower by one frame, advances its growth and fade
// tweens, and removes the ones past their lifetime.
func UpdateFlowers(e *ecs.ECS) {
	g := cfg.Garden
	fadeStart := g.FlowerMaxAge - g.FlowerFadeFrames

	var toDestroy []*donburi.Entry
	components.Flower.Each(e.World, func(entry *donburi.Entry) {
		f := components.Flower.Get(entry)
		f.Age++

		grown, _ := f.Growth.Update(1)
		f.Grown = float64(grown)

		if f.Age > fadeStart {
			opacity, _ := f.Fade.Update(1)
			f.Opacity = float64(opacity)
		}

		if f.Age > g.FlowerMaxAge {
			toDestroy = append(toDestroy, entry)
		}
	})

	for _, entry := range toDestroy {
		entry.Remove()
	}
}

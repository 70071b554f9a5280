package factory

import (
	"github.com/automoto/poetics/archetypes"
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a static ledge with its top-left corner at (x, y).
func CreatePlatform(ecs *ecs.ECS, space *resolv.Space, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	components.Platform.SetValue(platform, components.PlatformData{X: x, Y: y, W: w, H: h})

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	space.Add(obj)

	return platform
}

// CreatePlatforms lays out the session's ledges from the canvas size.
// The layout is computed once; later resizes do not move them.
func CreatePlatforms(ecs *ecs.ECS, space *resolv.Space, width, height float64) []*donburi.Entry {
	out := make([]*donburi.Entry, 0, len(cfg.Garden.Platforms))
	for _, p := range cfg.Garden.Platforms {
		out = append(out, CreatePlatform(ecs, space,
			p.X*width, p.Y*height, p.W*width, cfg.Garden.PlatformThickness))
	}
	return out
}

package factory

import (
	"math/rand/v2"

	"github.com/automoto/poetics/archetypes"
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/render"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFrame spawns the per-session singleton carrying frame context,
// input, pending audio and the render list.
func CreateFrame(ecs *ecs.ECS, rng *rand.Rand, width, height float64) *donburi.Entry {
	frame := archetypes.Frame.Spawn(ecs)
	components.Frame.SetValue(frame, components.FrameData{
		Width:  width,
		Height: height,
		FloorY: height - cfg.Garden.FloorInset,
		Rand:   rng,
		List:   render.NewList(64),
	})
	components.Audio.SetValue(frame, components.AudioData{
		PendingCues: make([]cfg.CueID, 0, 4),
	})
	return frame
}

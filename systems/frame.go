package systems

import (
	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrame starts a frame: recomputes the floor from the current canvas
// height and clears the render list. Must run first in the system order.
func UpdateFrame(e *ecs.ECS) {
	frame := GetFrame(e)
	if frame == nil {
		return
	}
	frame.Tick++
	frame.FloorY = frame.Height - cfg.Garden.FloorInset
	frame.List.Reset()

	factory.GrowSpace(e, frame.Width, frame.Height)
}

// GetFrame returns the session frame context, or nil before the session is built.
func GetFrame(e *ecs.ECS) *components.FrameData {
	entry, ok := components.Frame.First(e.World)
	if !ok {
		return nil
	}
	return components.Frame.Get(entry)
}

package systems

import (
	"github.com/automoto/poetics/components"
	"github.com/yohamta/donburi/ecs"
)

// SetInput swaps the input buffers and stores this frame's state.
// Must be called once per frame BEFORE the world updates.
func SetInput(e *ecs.ECS, state components.InputState) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = state
}

// GetInput returns the singleton Input component
func GetInput(e *ecs.ECS) *components.InputData {
	return getOrCreateInput(e)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

package factory

import (
	"github.com/automoto/poetics/archetypes"
	"github.com/automoto/poetics/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	spaceCellSize = 32
	spaceMinSize  = 2048
)

// CreateSpace spawns the broad-phase space. It is at least spaceMinSize on each
// side so that a window grown mid-session still falls inside it.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	w, h := spaceExtent(width), spaceExtent(height)
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space:  resolv.NewSpace(w, h, spaceCellSize, spaceCellSize),
		Width:  w,
		Height: h,
	})
	return space
}

// GrowSpace replaces the space with a larger one when the canvas outgrew it,
// re-adding every body. It reports whether a rebuild happened.
func GrowSpace(e *ecs.ECS, width, height float64) bool {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return false
	}
	sd := components.Space.Get(entry)
	w, h := spaceExtent(width), spaceExtent(height)
	if w <= sd.Width && h <= sd.Height {
		return false
	}
	w, h = max(w, sd.Width), max(h, sd.Height)

	next := resolv.NewSpace(w, h, spaceCellSize, spaceCellSize)
	components.Object.Each(e.World, func(en *donburi.Entry) {
		obj := components.Object.Get(en)
		if obj.Space == nil {
			// parked outside the space, e.g. a seed on cooldown
			return
		}
		obj.Space.Remove(obj.Object)
		next.Add(obj.Object)
	})
	components.Sensor.Each(e.World, func(en *donburi.Entry) {
		s := components.Sensor.Get(en)
		for _, probe := range []*resolv.Object{s.Landing, s.Pickup} {
			if probe.Space != nil {
				probe.Space.Remove(probe)
			}
			next.Add(probe)
		}
	})

	sd.Space = next
	sd.Width, sd.Height = w, h
	return true
}

func spaceExtent(v float64) int {
	n := int(v) + spaceCellSize
	if n < spaceMinSize {
		return spaceMinSize
	}
	return n
}

// GetSpace returns the session space, or nil if none was created.
func GetSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).Space
}

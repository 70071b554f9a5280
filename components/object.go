package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broad-phase body of an entity in the garden space
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData wraps the resolv space shared by every body in a session (singleton component)
type SpaceData struct {
	*resolv.Space
	Width, Height int
}

var Space = donburi.NewComponentType[SpaceData]()

// SensorData holds the probe objects the ball queries the space with.
// Probes are resized every frame to the region the narrow phase cares about.
type SensorData struct {
	Landing *resolv.Object // platform tops the ball may land on
	Pickup  *resolv.Object // seeds within pickup range
}

var Sensor = donburi.NewComponentType[SensorData]()

package components

import "github.com/yohamta/donburi"

// PhysicsData is the integrated state of a body moved by gravity
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	Friction float64
	Grounded bool    // touched a surface this frame
	ImpactY  float64 // surface height of the last contact
}

var Physics = donburi.NewComponentType[PhysicsData]()

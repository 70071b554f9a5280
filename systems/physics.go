package systems

import (
	"github.com/automoto/poetics/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity, velocity and friction.
// Must run BEFORE UpdateCollisions.
func UpdatePhysics(e *ecs.ECS) {
	components.Ball.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Ball.Get(entry)
		physics := components.Physics.Get(entry)

		physics.Grounded = false
		physics.SpeedY += physics.Gravity
		ball.X += physics.SpeedX
		ball.Y += physics.SpeedY
		physics.SpeedX *= physics.Friction
	})
}

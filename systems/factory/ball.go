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

// CreateBall spawns the ball at the canvas center, at rest, with no jump charges.
func CreateBall(ecs *ecs.ECS, space *resolv.Space, width, height float64) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)
	r := cfg.Garden.BallRadius
	x, y := width/2, height/2

	components.Ball.SetValue(ball, components.BallData{
		X:      x,
		Y:      y,
		Radius: r,
		Jumps:  cfg.Garden.StartJumps,
		Color:  cfg.Garden.BallColor,
	})
	components.Physics.SetValue(ball, components.PhysicsData{
		Gravity:  cfg.Garden.Gravity,
		Friction: cfg.Garden.Friction,
	})

	landing := resolv.NewObject(x-r, y+r, 2*r, 1, tags.ResolvSensor)
	pickup := resolv.NewObject(x-r, y-r, 2*r, 2*r, tags.ResolvSensor)
	landing.Data = ball
	pickup.Data = ball
	components.Sensor.SetValue(ball, components.SensorData{Landing: landing, Pickup: pickup})

	space.Add(landing, pickup)
	return ball
}

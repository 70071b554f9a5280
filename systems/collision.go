package systems

import (
	"math"

	"github.com/automoto/poetics/components"
	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the ball against the floor and the platforms.
// Platforms are one-way: only a ball moving down onto the top face lands.
func UpdateCollisions(e *ecs.ECS) {
	frame := GetFrame(e)
	entry, ok := components.Ball.First(e.World)
	if !ok || frame == nil {
		return
	}
	ball := components.Ball.Get(entry)
	physics := components.Physics.Get(entry)

	if ball.Y+ball.Radius > frame.FloorY {
		land(ball, physics, frame.FloorY)
	}

	sensor := components.Sensor.Get(entry)
	probe := sensor.Landing
	depth := captureDepth(physics)
	thickness := cfg.Garden.PlatformThickness
	probe.X = ball.X - ball.Radius
	probe.Y = ball.Y + ball.Radius - thickness - depth
	probe.W = 2 * ball.Radius
	probe.H = thickness + depth
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvPlatform)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvPlatform) {
		pe, ok := obj.Data.(*donburi.Entry)
		if !ok || !pe.Valid() {
			continue
		}
		p := components.Platform.Get(pe)
		if landsOn(ball, physics, p) {
			land(ball, physics, p.Y)
		}
	}
}

// UpdateWalls clamps the ball to the canvas edges with a damped rebound.
// Must run AFTER UpdateCollisions.
func UpdateWalls(e *ecs.ECS) {
	frame := GetFrame(e)
	entry, ok := components.Ball.First(e.World)
	if !ok || frame == nil {
		return
	}
	ball := components.Ball.Get(entry)
	physics := components.Physics.Get(entry)
	r := ball.Radius

	if ball.X < r {
		ball.X = r
		physics.SpeedX *= cfg.Garden.WallDamping
	}
	if ball.X > frame.Width-r {
		ball.X = frame.Width - r
		physics.SpeedX *= cfg.Garden.WallDamping
	}
}

func captureDepth(physics *components.PhysicsData) float64 {
	return math.Max(cfg.Garden.CaptureDepth, physics.SpeedY+cfg.Garden.CaptureMargin)
}

// landsOn is the narrow-phase test for a platform candidate.
func landsOn(ball *components.BallData, physics *components.PhysicsData, p *components.PlatformData) bool {
	if physics.SpeedY < 0 {
		return false
	}
	r := ball.Radius
	if ball.X <= p.X-r || ball.X >= p.X+p.W+r {
		return false
	}
	bottom := ball.Y + r
	return bottom >= p.Y && bottom <= p.Y+p.H+captureDepth(physics)
}

// land puts the ball on a surface and bounces it. Charges refill only when
// the rebound is small enough to count as resting.
func land(ball *components.BallData, physics *components.PhysicsData, surfaceY float64) {
	ball.Y = surfaceY - ball.Radius
	physics.SpeedY *= -cfg.Garden.Bounce
	physics.Grounded = true
	physics.ImpactY = surfaceY

	if math.Abs(physics.SpeedY) < physics.Gravity*cfg.Garden.RestFactor {
		physics.SpeedY = 0
		ball.Jumps = cfg.Garden.MaxJumps
	}
}
